package types

// JobType discriminates payloads on the periodic job queue.
type JobType string

const (
	JobDBMaintenance      JobType = "db-maintenance"
	JobRequeueUnprocessed JobType = "requeue-unprocessed"
	JobBackfillSweep      JobType = "backfill-sweep"
)

// IsValid reports whether the job type has a handler.
func (j JobType) IsValid() bool {
	switch j {
	case JobDBMaintenance, JobRequeueUnprocessed, JobBackfillSweep:
		return true
	default:
		return false
	}
}
