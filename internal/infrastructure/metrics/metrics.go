package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BoostMetrics covers the order workflow: creation, claiming, progress and
// payments.
type BoostMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersCreatedAmount  prometheus.CounterVec
	OrdersClaimedTotal   prometheus.CounterVec
	ClaimConflictsTotal  prometheus.CounterVec
	OrdersCompletedTotal prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec

	ProgressReportsTotal prometheus.CounterVec
	ReportReviewsTotal   prometheus.CounterVec

	PaymentDuration prometheus.HistogramVec
	PaymentsTotal   prometheus.CounterVec
}

func NewBoostMetrics() *BoostMetrics {
	return &BoostMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_orders_created_total",
				Help: "Total boost orders created",
			},
			[]string{"game", "boost_type"},
		),

		OrdersCreatedAmount: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_orders_created_amount_total",
				Help: "Total payable amount of created boost orders",
			},
			[]string{"game"},
		),

		OrdersClaimedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_orders_claimed_total",
				Help: "Total orders claimed by boosters",
			},
			[]string{"game"},
		),

		ClaimConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_claim_conflicts_total",
				Help: "Claim attempts that lost the race on an order",
			},
			[]string{"game"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_orders_completed_total",
				Help: "Total completed boost orders",
			},
			[]string{"game", "forced"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_orders_cancelled_total",
				Help: "Total cancelled or declined boost orders",
			},
			[]string{"game", "status"},
		),

		ProgressReportsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_progress_reports_total",
				Help: "Progress reports submitted by boosters",
			},
			[]string{"game"},
		),

		ReportReviewsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_report_reviews_total",
				Help: "Progress report review decisions",
			},
			[]string{"decision"},
		),

		PaymentDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boost_payment_duration_seconds",
				Help:    "External payment call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"method", "outcome"},
		),

		PaymentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boost_payments_total",
				Help: "External payment call outcomes",
			},
			[]string{"method", "outcome"},
		),
	}
}
