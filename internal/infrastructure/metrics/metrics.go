package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconciliationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_reconciliation_runs_total",
		Help: "Total number of webhook reconciliation runs, labelled by final state.",
	}, []string{"state"})

	ReconciliationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_reconciliation_failures_total",
		Help: "Total number of rejected or failed runs, labelled by error code.",
	}, []string{"reason"})

	ReconciliationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bridge_reconciliation_duration_ms",
		Help:    "End-to-end webhook handling latency in milliseconds.",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	AccountingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_accounting_requests_total",
		Help: "Total number of Zoho Books API calls, labelled by operation and outcome.",
	}, []string{"operation", "outcome"})

	RemoteCreates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_accounting_creates_total",
		Help: "Total number of records created in Zoho Books, labelled by kind.",
	}, []string{"kind"})
)

// ObserveRun records the outcome of one webhook delivery. reason is empty for
// succeeded and ignored runs.
func ObserveRun(state, reason string, elapsed time.Duration) {
	ReconciliationRuns.WithLabelValues(state).Inc()
	if reason != "" {
		ReconciliationFailures.WithLabelValues(reason).Inc()
	}
	ReconciliationDuration.Observe(float64(elapsed.Milliseconds()))
}
