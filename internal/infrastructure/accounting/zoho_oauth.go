package accounting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"golang.org/x/oauth2"
)

var zohoScopes = []string{
	"ZohoBooks.fullaccess.all",
	"ZohoBooks.payments.CREATE",
	"ZohoBooks.payments.READ",
	"ZohoBooks.contacts.CREATE",
	"ZohoBooks.contacts.READ",
	"ZohoBooks.contacts.UPDATE",
	"ZohoBooks.banking.CREATE",
	"ZohoBooks.banking.UPDATE",
	"ZohoBooks.banking.READ",
}

// AccountsBaseURL returns the Zoho accounts server for a data-center zone.
func AccountsBaseURL(zone string) string {
	return "https://accounts.zoho" + zone
}

// ZohoOAuth exchanges Zoho refresh tokens and authorization codes.
type ZohoOAuth struct {
	accountsURL string
	redirectURI string
	httpClient  *http.Client
}

var (
	_ interfaces.ITokenProvider         = (*ZohoOAuth)(nil)
	_ interfaces.IAuthorizationCodeFlow = (*ZohoOAuth)(nil)
)

// NewZohoOAuth derives the accounts server from the credential zone when
// accountsURL is empty.
func NewZohoOAuth(accountsURL, redirectURI string, httpClient *http.Client) *ZohoOAuth {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &ZohoOAuth{
		accountsURL: strings.TrimRight(accountsURL, "/"),
		redirectURI: redirectURI,
		httpClient:  httpClient,
	}
}

func (z *ZohoOAuth) config(creds entities.OAuthCredentials) *oauth2.Config {
	base := z.accountsURL
	if base == "" {
		base = AccountsBaseURL(creds.Zone)
	}
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  z.redirectURI,
		Scopes:       zohoScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/oauth/v2/auth",
			TokenURL:  base + "/oauth/v2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Refresh trades the refresh token for a fresh access token.
// Transport failures are returned as-is; everything else is ErrTokenRejected.
func (z *ZohoOAuth) Refresh(ctx context.Context, creds entities.OAuthCredentials) (entities.AccessToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, z.httpClient)
	src := z.config(creds).TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	tok, err := src.Token()
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return entities.AccessToken{}, fmt.Errorf("zoho token endpoint: %w", err)
		}
		log.Printf("[zoho][oauth] refresh rejected zone=%s err=%v", creds.Zone, err)
		return entities.AccessToken{}, fmt.Errorf("%w: %v", interfaces.ErrTokenRejected, err)
	}
	if tok.AccessToken == "" {
		return entities.AccessToken{}, fmt.Errorf("%w: empty access_token", interfaces.ErrTokenRejected)
	}

	return entities.AccessToken{Value: tok.AccessToken, ExpiresAt: tok.Expiry}, nil
}

// Invalidate is a no-op; ZohoOAuth holds no tokens between calls.
func (z *ZohoOAuth) Invalidate(context.Context, entities.OAuthCredentials) error {
	return nil
}

// AuthCodeURL builds the consent URL for an offline (refresh token) grant.
func (z *ZohoOAuth) AuthCodeURL(creds entities.OAuthCredentials, state string) string {
	return z.config(creds).AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange returns the refresh token granted for an authorization code.
// As with Refresh, only transport failures escape ErrTokenRejected.
func (z *ZohoOAuth) Exchange(ctx context.Context, creds entities.OAuthCredentials, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, z.httpClient)
	tok, err := z.config(creds).Exchange(ctx, code)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", fmt.Errorf("zoho code exchange: %w", err)
		}
		log.Printf("[zoho][oauth] code exchange rejected zone=%s err=%v", creds.Zone, err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrTokenRejected, err)
	}
	if tok.RefreshToken == "" {
		return "", fmt.Errorf("%w: no refresh_token in grant", interfaces.ErrTokenRejected)
	}
	return tok.RefreshToken, nil
}
