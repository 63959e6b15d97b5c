package interfaces

import "context"

// IAccountProfile looks up the display name of the originating processor account.
type IAccountProfile interface {
	DisplayName(ctx context.Context, apiKey string, accountID string) (string, error)
}
