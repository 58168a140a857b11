package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeApplied   = "applied"
	outcomeNoop      = "noop"
	outcomeIgnored   = "ignored_terminal"
	outcomeNotFound  = "order_not_found"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	sourceWebhook    = "notification"
	sourceRelay      = "relay"
	sourceStatusSync = "status_sync"
)

var (
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_reconciliations_total",
			Help: "Total number of payment notifications processed by outcome",
		},
		[]string{"source", "outcome"},
	)

	StatusSyncChecked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_status_sync_checked_total",
			Help: "Total number of pending orders checked against the payment gateway",
		},
	)
)
