package processor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event outcomes.
const (
	OutcomeFound            = "found"
	OutcomeNotFound         = "not_found"
	OutcomeIgnored          = "ignored"
	OutcomeInvalid          = "invalid"
	OutcomeFailed           = "failed"
	OutcomeRateLimited      = "rate_limited"
	OutcomeMissingProcessor = "missing_processor"
)

var (
	eventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_events_total",
			Help: "Total number of raw events handled by contract and outcome",
		},
		[]string{"contract", "outcome"},
	)

	invalidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_invalidation_errors_total",
			Help: "Total number of score invalidations that could not be enqueued",
		},
		[]string{"contract"},
	)

	batchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reputation_indexor_process_batch_duration_seconds",
			Help:    "Duration of processing one batch of raw events",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"contract"},
	)
)

func EventsInc(contract, outcome string, n int) {
	if n <= 0 {
		return
	}
	eventsTotal.WithLabelValues(contract, outcome).Add(float64(n))
}

func InvalidationErrorInc(contract string) {
	invalidationErrors.WithLabelValues(contract).Inc()
}

func BatchDurationLog(contract string, d time.Duration) {
	batchDuration.WithLabelValues(contract).Observe(d.Seconds())
}
