package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingSession scopes accounting API calls to one organization.
type AccountingSession struct {
	AccessToken    string
	OrganizationID string
}

// OAuthCredentials feed the refresh-token exchange.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Zone         string
}

type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// ReferenceSet carries the remote ids an invoice and payment are written against.
// CurrencyID and TaxID may be empty.
type ReferenceSet struct {
	CurrencyID    string `json:"currency_id,omitempty"`
	TaxID         string `json:"tax_id,omitempty"`
	ItemID        string `json:"item_id"`
	BankAccountID string `json:"bank_account_id"`
}

type InvoiceDraft struct {
	CustomerID   string
	Number       string
	Reference    string
	Date         string
	CurrencyID   string
	TaxID        string
	ItemID       string
	Rate         decimal.Decimal
	TaxInclusive bool
}

// CreatedInvoice is the remote invoice as Zoho computed it. Total includes any
// tax Zoho added on top of the line rate.
type CreatedInvoice struct {
	ID    string
	Total decimal.Decimal
}

type PaymentDraft struct {
	CustomerID  string
	InvoiceID   string
	Mode        string
	Amount      decimal.Decimal
	Date        string
	Reference   string
	Description string
	AccountID   string
}

type ItemDraft struct {
	Name        string
	Rate        decimal.Decimal
	Description string
}

// LedgerRecord is what the ledger writer leaves behind remotely.
type LedgerRecord struct {
	InvoiceID string `json:"invoice_id"`
	PaymentID string `json:"payment_id"`
}
