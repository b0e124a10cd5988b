package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransactionMetrics groups every metric emitted by the donation flow.
type TransactionMetrics struct {
	// Donation creation
	DonationsCreatedTotal       *prometheus.CounterVec
	DonationsCreatedAmountTotal prometheus.Counter

	// Webhook reconciliation, labeled by terminal outcome of the state machine
	WebhookNotificationsTotal *prometheus.CounterVec

	// Polling reconciliation
	PollSweepDuration prometheus.Histogram
	PollUpdatesTotal  prometheus.Counter

	// Upstream failures, labeled by gateway operation
	GatewayErrorsTotal *prometheus.CounterVec
}

func NewTransactionMetrics() *TransactionMetrics {
	return &TransactionMetrics{
		DonationsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_created_total",
				Help: "Total number of donation creation attempts",
			},
			[]string{"result"},
		),
		DonationsCreatedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "donations_created_amount_total",
				Help: "Total donated amount accepted by the gateway, smallest currency unit",
			},
		),
		WebhookNotificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_notifications_total",
				Help: "Total number of processed gateway notifications",
			},
			[]string{"outcome"},
		),
		PollSweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "poll_sweep_duration_seconds",
				Help:    "Duration of one pending-transaction reconciliation sweep",
				Buckets: prometheus.DefBuckets,
			},
		),
		PollUpdatesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "poll_updates_total",
				Help: "Total number of transaction updates written by the polling sweep",
			},
		),
		GatewayErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_errors_total",
				Help: "Total number of failed payment gateway requests",
			},
			[]string{"operation"},
		),
	}
}
