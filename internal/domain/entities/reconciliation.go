package entities

// RunState is the terminal state of one reconciliation run.
type RunState string

const (
	RunStateSucceeded RunState = "succeeded"
	RunStateIgnored   RunState = "ignored"
	RunStateRejected  RunState = "rejected"
	RunStateFailed    RunState = "failed"
)

type ReconciliationResult struct {
	RunID       string       `json:"run_id"`
	State       RunState     `json:"state"`
	EventID     string       `json:"event_id,omitempty"`
	EventType   string       `json:"event_type,omitempty"`
	CustomerID  string       `json:"customer_id,omitempty"`
	References  ReferenceSet `json:"references"`
	Ledger      LedgerRecord `json:"ledger"`
	Transaction Transaction  `json:"transaction"`
}
