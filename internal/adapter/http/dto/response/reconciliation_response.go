package response

import "stripe_books_bridge/internal/domain/entities"

const (
	MessageReconciled     = "Transaction reconciled"
	MessageWrongEventType = "Wrong event type"
)

type ReconciliationResponse struct {
	RunID     string `json:"run_id"`
	State     string `json:"state"`
	Message   string `json:"message"`
	EventID   string `json:"event_id,omitempty"`
	EventType string `json:"event_type,omitempty"`

	Reference   string `json:"reference,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	SettledDate string `json:"settled_date,omitempty"`

	CustomerID string `json:"customer_id,omitempty"`
	InvoiceID  string `json:"invoice_id,omitempty"`
	PaymentID  string `json:"payment_id,omitempty"`
}

func FromReconciliationResult(r entities.ReconciliationResult) ReconciliationResponse {
	resp := ReconciliationResponse{
		RunID:     r.RunID,
		State:     string(r.State),
		EventID:   r.EventID,
		EventType: r.EventType,
	}
	if r.State == entities.RunStateIgnored {
		resp.Message = MessageWrongEventType
		return resp
	}

	resp.Message = MessageReconciled
	resp.Reference = r.Transaction.ReferenceID
	resp.Amount = r.Transaction.Amount.StringFixed(2)
	resp.Currency = r.Transaction.Currency
	resp.SettledDate = r.Transaction.SettledDate
	resp.CustomerID = r.CustomerID
	resp.InvoiceID = r.Ledger.InvoiceID
	resp.PaymentID = r.Ledger.PaymentID
	return resp
}
