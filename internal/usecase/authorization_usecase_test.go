package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"
	mock_interfaces "stripe_books_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthorizationUseCase(t *testing.T) {
	clientCreds := entities.OAuthCredentials{ClientID: "cid", ClientSecret: "csecret", Zone: ".com"}

	t.Run("disabled outside dev", func(t *testing.T) {
		uc := NewAuthorizationUseCase(nil, nil, ".com", false)
		if _, err := uc.AuthorizationURL(context.Background(), "state"); !errors.Is(err, ErrAuthorizationDisabled) {
			t.Fatalf("expected ErrAuthorizationDisabled, got %v", err)
		}
		if err := uc.CompleteAuthorization(context.Background(), "code"); !errors.Is(err, ErrAuthorizationDisabled) {
			t.Fatalf("expected ErrAuthorizationDisabled, got %v", err)
		}
	})

	t.Run("authorization url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		flow := mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl)
		uc := NewAuthorizationUseCase(secretStoreFrom(ctrl, allSecrets()), flow, ".com", true)

		flow.EXPECT().AuthCodeURL(clientCreds, "state").Return("https://accounts.zoho.com/oauth/v2/auth?x=1")

		u, err := uc.AuthorizationURL(context.Background(), "state")
		if err != nil || u != "https://accounts.zoho.com/oauth/v2/auth?x=1" {
			t.Fatalf("unexpected result url=%s err=%v", u, err)
		}
	})

	t.Run("missing client credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuthorizationUseCase(secretStoreFrom(ctrl, map[string]string{}), mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl), ".com", true)

		if _, err := uc.AuthorizationURL(context.Background(), "state"); !errors.Is(err, ErrConfigurationMissing) {
			t.Fatalf("expected ErrConfigurationMissing, got %v", err)
		}
	})

	t.Run("callback stores refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		flow := mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl)
		store := secretStoreFrom(ctrl, allSecrets())
		uc := NewAuthorizationUseCase(store, flow, ".com", true)

		flow.EXPECT().Exchange(gomock.Any(), clientCreds, "code-1").Return("new-rt", nil)
		store.EXPECT().Put(gomock.Any(), interfaces.SecretZohoRefreshToken, "new-rt").Return(nil)

		if err := uc.CompleteAuthorization(context.Background(), " code-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("callback without code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuthorizationUseCase(secretStoreFrom(ctrl, allSecrets()), mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl), ".com", true)

		if err := uc.CompleteAuthorization(context.Background(), ""); !errors.Is(err, ErrMissingAuthCode) {
			t.Fatalf("expected ErrMissingAuthCode, got %v", err)
		}
	})

	t.Run("callback exchange rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		flow := mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl)
		uc := NewAuthorizationUseCase(secretStoreFrom(ctrl, allSecrets()), flow, ".com", true)

		flow.EXPECT().Exchange(gomock.Any(), gomock.Any(), "code-1").Return("", fmt.Errorf("%w: invalid_code", interfaces.ErrTokenRejected))

		if err := uc.CompleteAuthorization(context.Background(), "code-1"); !errors.Is(err, ErrUpstreamAuth) {
			t.Fatalf("expected ErrUpstreamAuth, got %v", err)
		}
	})

	t.Run("callback without refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		flow := mock_interfaces.NewMockIAuthorizationCodeFlow(ctrl)
		uc := NewAuthorizationUseCase(secretStoreFrom(ctrl, allSecrets()), flow, ".com", true)

		flow.EXPECT().Exchange(gomock.Any(), gomock.Any(), "code-1").Return("", nil)

		if err := uc.CompleteAuthorization(context.Background(), "code-1"); !errors.Is(err, ErrUpstreamAuth) {
			t.Fatalf("expected ErrUpstreamAuth, got %v", err)
		}
	})
}
