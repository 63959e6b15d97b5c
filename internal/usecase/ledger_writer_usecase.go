package usecase

import (
	"context"
	"log"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"
)

// LedgerSettings configure how invoices and payments are written.
type LedgerSettings struct {
	PaymentMode  string
	TaxInclusive bool
}

// ILedgerWriterUseCase writes the invoice and then the payment that settles it.
type ILedgerWriterUseCase interface {
	Write(ctx context.Context, s entities.AccountingSession, tx entities.Transaction, customerID string, refs entities.ReferenceSet) (entities.LedgerRecord, error)
}

type LedgerWriterUseCase struct {
	gateway  interfaces.IAccountingGateway
	settings LedgerSettings
}

var _ ILedgerWriterUseCase = (*LedgerWriterUseCase)(nil)

func NewLedgerWriterUseCase(gateway interfaces.IAccountingGateway, settings LedgerSettings) *LedgerWriterUseCase {
	return &LedgerWriterUseCase{gateway: gateway, settings: settings}
}

// Write never creates the payment unless the invoice was created. There is no
// compensation: a failed payment leaves the invoice in place and the error
// carries its id.
func (u *LedgerWriterUseCase) Write(ctx context.Context, s entities.AccountingSession, tx entities.Transaction, customerID string, refs entities.ReferenceSet) (entities.LedgerRecord, error) {
	invoice := entities.InvoiceDraft{
		CustomerID:   customerID,
		Number:       tx.ReferenceID,
		Reference:    tx.ReferenceID,
		Date:         tx.SettledDate,
		CurrencyID:   refs.CurrencyID,
		TaxID:        refs.TaxID,
		ItemID:       refs.ItemID,
		Rate:         tx.Amount,
		TaxInclusive: u.settings.TaxInclusive,
	}

	log.Printf("[reconcile][ledger] creating invoice reference=%s amount=%s currency=%s", tx.ReferenceID, tx.Amount.StringFixed(2), tx.Currency)
	created, err := u.gateway.CreateInvoice(ctx, s, invoice)
	if err == nil && created.ID == "" {
		err = errEmptyRemoteID
	}
	if err != nil {
		log.Printf("[reconcile][ledger] invoice failed reference=%s err=%v", tx.ReferenceID, err)
		return entities.LedgerRecord{}, &LedgerWriteError{Stage: StageInvoice, Reference: tx.ReferenceID, Err: err}
	}
	invoiceID := created.ID

	// The payment settles the invoice in full. With tax-exclusive rates Zoho
	// adds tax on top, so the total can exceed the settled amount.
	amount := tx.Amount
	if created.Total.IsPositive() {
		amount = created.Total
	}
	if !amount.Equal(tx.Amount) {
		log.Printf("[reconcile][ledger] invoice total differs from settled amount reference=%s amount=%s total=%s",
			tx.ReferenceID, tx.Amount.StringFixed(2), amount.StringFixed(2))
	}
	log.Printf("[reconcile][ledger] invoice created reference=%s invoice_id=%s total=%s", tx.ReferenceID, invoiceID, amount.StringFixed(2))

	payment := entities.PaymentDraft{
		CustomerID:  customerID,
		InvoiceID:   invoiceID,
		Mode:        u.settings.PaymentMode,
		Amount:      amount,
		Date:        tx.SettledDate,
		Reference:   tx.ReferenceID,
		Description: tx.Description,
		AccountID:   refs.BankAccountID,
	}

	paymentID, err := u.gateway.CreatePayment(ctx, s, payment)
	if err == nil && paymentID == "" {
		err = errEmptyRemoteID
	}
	if err != nil {
		log.Printf("[reconcile][ledger] ERROR payment failed; orphan invoice needs manual reconciliation stage=%s reference=%s orphan_invoice_id=%s err=%v",
			StagePayment, tx.ReferenceID, invoiceID, err)
		return entities.LedgerRecord{InvoiceID: invoiceID}, &LedgerWriteError{Stage: StagePayment, Reference: tx.ReferenceID, InvoiceID: invoiceID, Err: err}
	}
	log.Printf("[reconcile][ledger] payment created reference=%s invoice_id=%s payment_id=%s", tx.ReferenceID, invoiceID, paymentID)

	return entities.LedgerRecord{InvoiceID: invoiceID, PaymentID: paymentID}, nil
}
