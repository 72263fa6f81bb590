package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	maintenanceRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reputation_indexor_maintenance_runs_total",
			Help: "Total number of maintenance runs",
		},
	)

	maintenanceSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_indexor_maintenance_steps_total",
			Help: "Total number of maintenance steps by step and status",
		},
		[]string{"step", "status"},
	)

	maintenanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reputation_indexor_maintenance_duration_seconds",
			Help:    "Duration of maintenance runs",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), //nolint:mnd
		},
	)

	maintenanceLastRun = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reputation_indexor_maintenance_last_run_timestamp",
			Help: "Unix timestamp of the last maintenance run",
		},
	)

	maintenanceReclaimed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reputation_indexor_maintenance_space_reclaimed_bytes",
			Help: "Bytes reclaimed by the last maintenance run",
		},
	)

	dbSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reputation_indexor_db_size_bytes",
			Help: "Database size in bytes including WAL and shared memory files",
		},
	)
)

func MaintenanceRunsInc() {
	maintenanceRuns.Inc()
}

func MaintenanceStepInc(step string, ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	maintenanceSteps.WithLabelValues(step, status).Inc()
}

func MaintenanceDurationLog(duration time.Duration, reclaimed uint64) {
	maintenanceDuration.Observe(duration.Seconds())
	maintenanceLastRun.Set(float64(time.Now().UTC().Unix()))
	maintenanceReclaimed.Set(float64(reclaimed))
}

func DBSizeLog(sizeBytes int64) {
	dbSize.Set(float64(sizeBytes))
}
