package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"net/http"

	request "stripe_books_bridge/internal/adapter/http/dto/request"
	"stripe_books_bridge/internal/usecase"
	"stripe_books_bridge/pkg"

	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie = "zoho_oauth_state"
	oauthStateMaxAge = 600
)

var errInvalidOAuthState = pkg.NewDomainErrorSimple("INVALID_STATE", "OAuth state mismatch", http.StatusBadRequest)

// OAuthHandler serves the developer-only Zoho consent flow.
type OAuthHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewOAuthHandler(uc usecase.IAuthorizationUseCase) *OAuthHandler {
	return &OAuthHandler{usecase: uc}
}

// StartAuthorization redirects to the Zoho consent screen.
func (h *OAuthHandler) StartAuthorization(c *gin.Context) {
	state, err := newOAuthState()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	authURL, err := h.usecase.AuthorizationURL(c.Request.Context(), state)
	if err != nil {
		log.Printf("[oauth][handler] start failed err=%v", err)
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, authURL)
}

// Callback exchanges the authorization code and stores the refresh token.
func (h *OAuthHandler) Callback(c *gin.Context) {
	var q request.OAuthCallbackRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if q.Denied() {
		log.Printf("[oauth][handler] consent denied error=%s", q.Error)
		appErr := pkg.NewDomainErrorSimple("CONSENT_DENIED", "Authorization was denied", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(q.State)) != 1 {
		c.JSON(errInvalidOAuthState.HTTPStatus, errInvalidOAuthState.ToHTTPError())
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	if err := h.usecase.CompleteAuthorization(c.Request.Context(), q.ResolveCode()); err != nil {
		log.Printf("[oauth][handler] callback failed err=%v", err)
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Refresh token stored"})
}

func newOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthorizationDisabled):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingAuthCode):
		return pkg.NewDomainErrorSimple("MISSING_AUTH_CODE", "No authorization code received", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationMissing):
		return pkg.NewDomainErrorSimple("CONFIGURATION_MISSING", "Environment details not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstreamAuth):
		return pkg.NewDomainError("UPSTREAM_AUTH_FAILED", "Accounting system rejected the authorization", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
