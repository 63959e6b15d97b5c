package payments

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

// StripeEventVerifier checks the Stripe-Signature header and decodes the event envelope.
//
// The signature is validated on the raw bytes before anything is decoded, and
// the event API version is not pinned: only data.object is read downstream.
type StripeEventVerifier struct {
	tolerance time.Duration
}

var _ interfaces.IEventVerifier = (*StripeEventVerifier)(nil)

func NewStripeEventVerifier(tolerance time.Duration) *StripeEventVerifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &StripeEventVerifier{tolerance: tolerance}
}

func (v *StripeEventVerifier) Verify(payload []byte, signatureHeader string, secret string) (entities.VerifiedEvent, error) {
	if strings.TrimSpace(signatureHeader) == "" {
		return entities.VerifiedEvent{}, fmt.Errorf("%w: Stripe-Signature header missing", interfaces.ErrEventMalformed)
	}

	if err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, secret, v.tolerance); err != nil {
		log.Printf("[stripe][verifier] signature rejected err=%v", err)
		return entities.VerifiedEvent{}, fmt.Errorf("%w: %v", interfaces.ErrSignatureMismatch, err)
	}

	var ev stripe.Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return entities.VerifiedEvent{}, fmt.Errorf("%w: %v", interfaces.ErrEventMalformed, err)
	}
	if ev.Data == nil || len(ev.Data.Raw) == 0 {
		return entities.VerifiedEvent{}, fmt.Errorf("%w: event %s has no data.object", interfaces.ErrEventMalformed, ev.ID)
	}

	eventType := string(ev.Type)
	return entities.VerifiedEvent{
		ID:      ev.ID,
		Kind:    entities.KindFromStripeType(eventType),
		Type:    eventType,
		Account: ev.Account,
		Created: ev.Created,
		Payload: ev.Data.Raw,
	}, nil
}
