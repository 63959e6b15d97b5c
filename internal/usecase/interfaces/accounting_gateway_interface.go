package interfaces

import (
	"context"
	"stripe_books_bridge/internal/domain/entities"
)

// IAccountingGateway abstracts the accounting API (Zoho Books).
//
// Find* methods return an empty id and a nil error when nothing matches;
// Create* methods return the id assigned by the remote system. A refused
// access token matches ErrAccessTokenInvalid.
type IAccountingGateway interface {
	FindContactByName(ctx context.Context, s entities.AccountingSession, name string) (string, error)
	CreateContact(ctx context.Context, s entities.AccountingSession, name string) (string, error)

	FindCurrencyID(ctx context.Context, s entities.AccountingSession, code string) (string, error)
	FindTaxID(ctx context.Context, s entities.AccountingSession, name string) (string, error)

	FindItemID(ctx context.Context, s entities.AccountingSession, name string) (string, error)
	CreateItem(ctx context.Context, s entities.AccountingSession, item entities.ItemDraft) (string, error)

	FindBankAccountID(ctx context.Context, s entities.AccountingSession, name string) (string, error)
	CreateBankAccount(ctx context.Context, s entities.AccountingSession, name string) (string, error)

	CreateInvoice(ctx context.Context, s entities.AccountingSession, inv entities.InvoiceDraft) (entities.CreatedInvoice, error)
	CreatePayment(ctx context.Context, s entities.AccountingSession, p entities.PaymentDraft) (string, error)
}
