package poller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_poll_requests_total",
			Help: "Total number of log requests issued by the poller by result",
		},
		[]string{"contract", "result"},
	)

	pollWindow = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reputation_indexor_poll_window_blocks",
			Help: "Current adaptive log request window per contract",
		},
		[]string{"contract"},
	)
)

func PollRequestInc(contract, result string) {
	pollRequests.WithLabelValues(contract, result).Inc()
}

func PollWindowLog(contract string, window uint64) {
	pollWindow.WithLabelValues(contract).Set(float64(window))
}
