package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"
)

// IAuthorizationUseCase is the developer-only consent flow that stores a
// refresh token in the secret store. Every call fails with
// ErrAuthorizationDisabled outside development mode.
type IAuthorizationUseCase interface {
	AuthorizationURL(ctx context.Context, state string) (string, error)
	CompleteAuthorization(ctx context.Context, code string) error
}

type AuthorizationUseCase struct {
	secrets interfaces.ISecretStore
	flow    interfaces.IAuthorizationCodeFlow
	zone    string
	enabled bool
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(secrets interfaces.ISecretStore, flow interfaces.IAuthorizationCodeFlow, zone string, enabled bool) *AuthorizationUseCase {
	return &AuthorizationUseCase{secrets: secrets, flow: flow, zone: zone, enabled: enabled}
}

func (u *AuthorizationUseCase) AuthorizationURL(ctx context.Context, state string) (string, error) {
	creds, err := u.clientCredentials(ctx)
	if err != nil {
		return "", err
	}
	return u.flow.AuthCodeURL(creds, state), nil
}

func (u *AuthorizationUseCase) CompleteAuthorization(ctx context.Context, code string) error {
	creds, err := u.clientCredentials(ctx)
	if err != nil {
		return err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrMissingAuthCode
	}

	refreshToken, err := u.flow.Exchange(ctx, creds, code)
	if err != nil {
		log.Printf("[oauth][usecase] code exchange failed err=%v", err)
		if errors.Is(err, interfaces.ErrTokenRejected) {
			return fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
		}
		return err
	}
	if refreshToken == "" {
		return fmt.Errorf("%w: no refresh token returned", ErrUpstreamAuth)
	}

	if err := u.secrets.Put(ctx, interfaces.SecretZohoRefreshToken, refreshToken); err != nil {
		log.Printf("[oauth][usecase] storing refresh token failed err=%v", err)
		return err
	}
	log.Printf("[oauth][usecase] refresh token stored")
	return nil
}

func (u *AuthorizationUseCase) clientCredentials(ctx context.Context) (entities.OAuthCredentials, error) {
	if !u.enabled {
		return entities.OAuthCredentials{}, ErrAuthorizationDisabled
	}
	creds := entities.OAuthCredentials{Zone: u.zone}
	var err error
	if creds.ClientID, err = u.secrets.Get(ctx, interfaces.SecretZohoClientID); err != nil {
		return entities.OAuthCredentials{}, err
	}
	if creds.ClientSecret, err = u.secrets.Get(ctx, interfaces.SecretZohoClientSecret); err != nil {
		return entities.OAuthCredentials{}, err
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return entities.OAuthCredentials{}, ErrConfigurationMissing
	}
	return creds, nil
}
