package entities

import "github.com/shopspring/decimal"

const DefaultTransactionDescription = "No description provided"

// Transaction is the normalized view of a completed checkout.
//
// Amount is in major units, rounded to cents. SettledDate is a calendar date
// (YYYY-MM-DD) in the organization time zone.
type Transaction struct {
	ReferenceID string          `json:"reference_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	SettledDate string          `json:"settled_date"`
}
