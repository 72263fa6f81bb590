package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindBackfill = "backfill"
	kindRequeue  = "requeue"
)

var swept = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reputation_indexor_sweep_enqueued_total",
		Help: "Total number of raw events enqueued for processing by sweep kind",
	},
	[]string{"kind"},
)

func SweptInc(kind string, n int) {
	swept.WithLabelValues(kind).Add(float64(n))
}
