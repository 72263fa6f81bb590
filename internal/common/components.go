package common

const (
	ComponentApp         = "app"
	ComponentRPC         = "rpc"
	ComponentPoller      = "poller"
	ComponentRawEvents   = "raw-event-store"
	ComponentCursors     = "cursor-store"
	ComponentProcessor   = "processor"
	ComponentQueue       = "queue"
	ComponentSweep       = "sweep"
	ComponentScore       = "score"
	ComponentJobs        = "jobs"
	ComponentScheduler   = "scheduler"
	ComponentMaintenance = "maintenance"
	ComponentAPI         = "api"
)

var AllComponents = map[string]struct{}{
	ComponentApp:         {},
	ComponentRPC:         {},
	ComponentPoller:      {},
	ComponentRawEvents:   {},
	ComponentCursors:     {},
	ComponentProcessor:   {},
	ComponentQueue:       {},
	ComponentSweep:       {},
	ComponentScore:       {},
	ComponentJobs:        {},
	ComponentScheduler:   {},
	ComponentMaintenance: {},
	ComponentAPI:         {},
}
