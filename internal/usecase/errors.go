package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationFailure = errors.New("event authentication failed")
	ErrMalformedInput        = errors.New("malformed event")
	ErrDataIntegrity         = errors.New("event data inconsistent")
	ErrUpstreamAuth          = errors.New("accounting authorization rejected")
	ErrReferenceResolution   = errors.New("reference resolution failed")
	ErrLedgerWrite           = errors.New("ledger write failed")
	ErrConfigurationMissing  = errors.New("environment details not found")
	ErrAuthorizationDisabled = errors.New("authorization flow disabled")
	ErrMissingAuthCode       = errors.New("no authorization code received")
)

// Ledger write stages.
const (
	StageInvoice = "invoice"
	StagePayment = "payment"
)

// ReferenceResolutionError names the reference kind that could not be resolved.
type ReferenceResolutionError struct {
	Kind string
	Err  error
}

func (e *ReferenceResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Kind, e.Err)
}

func (e *ReferenceResolutionError) Unwrap() error { return e.Err }

func (e *ReferenceResolutionError) Is(target error) bool { return target == ErrReferenceResolution }

// LedgerWriteError reports which write failed. A payment-stage failure
// leaves InvoiceID behind in the accounting system without a payment.
type LedgerWriteError struct {
	Stage     string
	Reference string
	InvoiceID string
	Err       error
}

func (e *LedgerWriteError) Error() string {
	if e.InvoiceID != "" {
		return fmt.Sprintf("create %s reference=%s invoice_id=%s: %v", e.Stage, e.Reference, e.InvoiceID, e.Err)
	}
	return fmt.Sprintf("create %s reference=%s: %v", e.Stage, e.Reference, e.Err)
}

func (e *LedgerWriteError) Unwrap() error { return e.Err }

func (e *LedgerWriteError) Is(target error) bool { return target == ErrLedgerWrite }
