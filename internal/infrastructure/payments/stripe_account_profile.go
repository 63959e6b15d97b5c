package payments

import (
	"context"
	"strings"

	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// StripeAccountProfile reads the display name of a Stripe account.
// A client is built per call because the API key lives in the secret store.
type StripeAccountProfile struct {
	backends *stripe.Backends
}

var _ interfaces.IAccountProfile = (*StripeAccountProfile)(nil)

// NewStripeAccountProfile uses the default Stripe backends when backends is nil.
func NewStripeAccountProfile(backends *stripe.Backends) *StripeAccountProfile {
	return &StripeAccountProfile{backends: backends}
}

// DisplayName prefers the business profile name, then the account email, then the id.
func (p *StripeAccountProfile) DisplayName(ctx context.Context, apiKey string, accountID string) (string, error) {
	sc := client.New(apiKey, p.backends)

	params := &stripe.AccountParams{}
	params.Context = ctx
	acct, err := sc.Accounts.GetByID(accountID, params)
	if err != nil {
		return "", err
	}

	if acct.BusinessProfile != nil && strings.TrimSpace(acct.BusinessProfile.Name) != "" {
		return acct.BusinessProfile.Name, nil
	}
	if strings.TrimSpace(acct.Email) != "" {
		return acct.Email, nil
	}
	return accountID, nil
}
