package interfaces

import (
	"errors"
	"stripe_books_bridge/internal/domain/entities"
)

var (
	// ErrSignatureMismatch is returned when the signature header does not authenticate the payload.
	ErrSignatureMismatch = errors.New("event signature mismatch")
	// ErrEventMalformed is returned when the header is absent or the payload cannot be decoded.
	ErrEventMalformed = errors.New("event malformed")
)

// IEventVerifier authenticates an inbound processor event.
//
// payload must be the exact bytes received; any mutation invalidates the signature.
type IEventVerifier interface {
	Verify(payload []byte, signatureHeader string, secret string) (entities.VerifiedEvent, error)
}
