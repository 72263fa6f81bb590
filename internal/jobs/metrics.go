package jobs

import (
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var jobRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reputation_indexor_periodic_job_runs_total",
		Help: "Total number of periodic job runs by type and result",
	},
	[]string{"type", "result"},
)

func JobRunInc(jobType itypes.JobType, result string) {
	jobRuns.WithLabelValues(string(jobType), result).Inc()
}
