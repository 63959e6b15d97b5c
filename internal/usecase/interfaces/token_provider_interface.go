package interfaces

import (
	"context"
	"errors"
	"stripe_books_bridge/internal/domain/entities"
)

// ErrTokenRejected is returned when the authorization server refuses the refresh grant.
var ErrTokenRejected = errors.New("token exchange rejected")

// ErrAccessTokenInvalid is matched by gateway errors raised when the accounting
// API refuses an access token that was accepted at issue time.
var ErrAccessTokenInvalid = errors.New("access token invalid")

// ITokenProvider exchanges a refresh credential for a short-lived access token.
// Invalidate discards any token held for creds so the next Refresh goes upstream.
type ITokenProvider interface {
	Refresh(ctx context.Context, creds entities.OAuthCredentials) (entities.AccessToken, error)
	Invalidate(ctx context.Context, creds entities.OAuthCredentials) error
}

// ITokenCache stores access tokens until shortly before they expire.
// Get reports false when nothing usable is cached.
type ITokenCache interface {
	Get(ctx context.Context, key string) (entities.AccessToken, bool, error)
	Set(ctx context.Context, key string, token entities.AccessToken) error
	Delete(ctx context.Context, key string) error
}

// IAuthorizationCodeFlow drives the developer-only consent flow that yields a refresh token.
type IAuthorizationCodeFlow interface {
	AuthCodeURL(creds entities.OAuthCredentials, state string) string
	Exchange(ctx context.Context, creds entities.OAuthCredentials, code string) (string, error)
}
