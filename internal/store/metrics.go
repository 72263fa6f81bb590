package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rawEventsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_raw_events_stored_total",
			Help: "Total number of raw event inserts by contract and result",
		},
		[]string{"contract", "result"},
	)

	cursorBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reputation_indexor_poll_cursor_block",
			Help: "Last consumed block per contract",
		},
		[]string{"contract"},
	)
)

func RawEventCreatedInc(contract string) {
	rawEventsStored.WithLabelValues(contract, "created").Inc()
}

func RawEventDuplicateInc(contract string) {
	rawEventsStored.WithLabelValues(contract, "duplicate").Inc()
}

func CursorBlockLog(contract string, block uint64) {
	cursorBlock.WithLabelValues(contract).Set(float64(block))
}
