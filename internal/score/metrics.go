package score

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_score_invalidations_total",
			Help: "Total number of score invalidations enqueued by target kind",
		},
		[]string{"kind"},
	)

	recomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_score_recomputes_total",
			Help: "Total number of score recompute attempts by result",
		},
		[]string{"result"},
	)

	recomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reputation_indexor_score_recompute_duration_seconds",
			Help:    "Duration of successful score recomputes",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func InvalidationInc(kind string) {
	invalidations.WithLabelValues(kind).Inc()
}

func RecomputeInc(result string) {
	recomputes.WithLabelValues(result).Inc()
}

func RecomputeDurationLog(d time.Duration) {
	recomputeDuration.Observe(d.Seconds())
}
