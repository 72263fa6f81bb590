// Package queue holds what the queue drivers share.
package queue

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message results.
const (
	ResultEnqueued     = "enqueued"
	ResultAcked        = "acked"
	ResultRequeued     = "requeued"
	ResultRedelivered  = "redelivered"
	ResultDeadLettered = "dead_lettered"
	ResultDropped      = "dropped"
)

var (
	messages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_queue_messages_total",
			Help: "Total number of queue messages by queue and result",
		},
		[]string{"queue", "result"},
	)

	handleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reputation_indexor_queue_handle_duration_seconds",
			Help:    "Duration of queue message handlers",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"queue"},
	)
)

func MessagesInc(queue, result string) {
	messages.WithLabelValues(queue, result).Inc()
}

func HandleDurationLog(queue string, d time.Duration) {
	handleDuration.WithLabelValues(queue).Observe(d.Seconds())
}
