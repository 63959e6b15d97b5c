package interfaces

import "context"

// Secret keys read by the bridge.
const (
	SecretZohoClientID     = "ZOHO_CLIENT_ID"
	SecretZohoClientSecret = "ZOHO_CLIENT_SECRET"
	SecretZohoRefreshToken = "ZOHO_REFRESH_TOKEN"
	SecretZohoOrgID        = "ZOHO_ORG_ID"
	SecretStripeWebhookKey = "STRIPE_WEBHOOK_KEY"
	SecretStripeSecretKey  = "STRIPE_SECRET_KEY"
	SecretStripeAccountID  = "STRIPE_ACCOUNT_ID"
)

// ISecretStore abstracts secret persistence (environment or DynamoDB).
//
// Get returns an empty string and a nil error when the key is absent.
type ISecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
}
