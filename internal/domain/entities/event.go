package entities

import "encoding/json"

// EventKind is the normalized tag of a verified processor event.
type EventKind string

const (
	EventKindCheckoutCompleted EventKind = "checkout_completed"
	EventKindOther             EventKind = "other"
)

// StripeEventCheckoutCompleted is the wire type that maps to EventKindCheckoutCompleted.
const StripeEventCheckoutCompleted = "checkout.session.completed"

// VerifiedEvent is an inbound event whose signature has been checked.
//
// Payload holds the raw `data.object` of the event; Type keeps the original
// wire type for logging.
type VerifiedEvent struct {
	ID      string          `json:"id"`
	Kind    EventKind       `json:"kind"`
	Type    string          `json:"type"`
	Account string          `json:"account,omitempty"`
	Created int64           `json:"created"`
	Payload json.RawMessage `json:"payload"`
}

func KindFromStripeType(t string) EventKind {
	if t == StripeEventCheckoutCompleted {
		return EventKindCheckoutCompleted
	}
	return EventKindOther
}
