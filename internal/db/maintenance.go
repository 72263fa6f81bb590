package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
)

// Maintenance steps, in the order they run.
const (
	StepCheckpoint = "wal_checkpoint"
	StepOptimize   = "optimize"
	StepVacuum     = "vacuum"
)

// Maintenance runs WAL checkpoints, planner statistics refresh and VACUUM on demand.
// Writers (poller, event processing) hold the shared operation lock so that maintenance
// gets exclusive access.
type Maintenance interface {
	// AcquireOperationLock acquires a read lock for database operations.
	// Returns an unlock function that must be called when the operation completes.
	AcquireOperationLock() func()
	// RunMaintenance runs every maintenance step.
	RunMaintenance(ctx context.Context) error
	// GetMetrics returns the outcome of the last runs.
	GetMetrics() MaintenanceMetrics
}

// MaintenanceMetrics provides visibility into maintenance runs.
type MaintenanceMetrics struct {
	LastMaintenanceTime  time.Time
	LastDuration         time.Duration
	LastReclaimedBytes   uint64
	MaintenanceCount     uint64
	LastMaintenanceError error
}

type maintenanceStep struct {
	name string
	run  func(ctx context.Context) error
}

// MaintenanceCoordinator serializes maintenance against normal writes with a RWMutex:
// writers take the read side, maintenance the write side.
type MaintenanceCoordinator struct {
	db     *sql.DB
	config config.MaintenanceConfig
	dbPath string
	log    *logger.Logger
	steps  []maintenanceStep

	opLock sync.RWMutex

	metricsLock sync.Mutex
	metrics     MaintenanceMetrics
}

var _ Maintenance = (*MaintenanceCoordinator)(nil)

// NewMaintenanceCoordinator creates a new maintenance coordinator.
func NewMaintenanceCoordinator(
	dbPath string,
	db *sql.DB,
	cfg config.MaintenanceConfig,
	log *logger.Logger,
) *MaintenanceCoordinator {
	cfg.ApplyDefaults()

	m := &MaintenanceCoordinator{
		db:     db,
		config: cfg,
		dbPath: dbPath,
		log:    log.WithComponent(common.ComponentMaintenance),
	}
	m.steps = []maintenanceStep{
		{name: StepCheckpoint, run: m.walCheckpoint},
		{name: StepOptimize, run: m.optimize},
		{name: StepVacuum, run: m.vacuum},
	}

	return m
}

// RunMaintenance takes the exclusive lock and runs every step. A failing step does not stop
// the following ones; the first error is returned.
func (m *MaintenanceCoordinator) RunMaintenance(ctx context.Context) error {
	m.opLock.Lock()
	defer m.opLock.Unlock()

	// cancelled while waiting for in-flight writes
	if err := ctx.Err(); err != nil {
		return err
	}

	MaintenanceRunsInc()
	start := time.Now().UTC()
	m.log.Info("starting database maintenance")

	initialSize, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnf("failed to get initial database size: %v", err)
	}

	var firstErr error
	for _, step := range m.steps {
		if err := step.run(ctx); err != nil {
			MaintenanceStepInc(step.name, false)
			m.log.Warnf("maintenance step %s failed: %v", step.name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", step.name, err)
			}
			continue
		}
		MaintenanceStepInc(step.name, true)
	}

	finalSize, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnf("failed to get final database size: %v", err)
	}
	DBSizeLog(finalSize)

	var reclaimed uint64
	if initialSize > finalSize {
		reclaimed = uint64(initialSize - finalSize)
	}

	duration := time.Since(start)
	MaintenanceDurationLog(duration, reclaimed)

	m.metricsLock.Lock()
	m.metrics.LastMaintenanceTime = time.Now().UTC()
	m.metrics.LastDuration = duration
	m.metrics.LastReclaimedBytes = reclaimed
	m.metrics.MaintenanceCount++
	m.metrics.LastMaintenanceError = firstErr
	m.metricsLock.Unlock()

	if firstErr != nil {
		m.log.Warnf("maintenance completed with errors in %v: %v", duration, firstErr)
		return firstErr
	}

	m.log.Infof("maintenance completed in %v, reclaimed %d MB", duration, common.BytesToMB(reclaimed))
	return nil
}

func (m *MaintenanceCoordinator) walCheckpoint(ctx context.Context) error {
	var mode string
	if err := m.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		return fmt.Errorf("failed to check journal mode: %w", err)
	}
	if !strings.EqualFold(mode, "wal") {
		m.log.Debugf("journal mode is %s, skipping WAL checkpoint", mode)
		return nil
	}

	var busy, logFrames, checkpointed int
	query := fmt.Sprintf("PRAGMA wal_checkpoint(%s)", m.config.WALCheckpointMode)
	if err := m.db.QueryRowContext(ctx, query).Scan(&busy, &logFrames, &checkpointed); err != nil {
		return err
	}

	m.log.Debugf("WAL checkpoint %s: busy=%d log_frames=%d checkpointed=%d",
		m.config.WALCheckpointMode, busy, logFrames, checkpointed)
	if busy > 0 {
		m.log.Warnf("WAL checkpoint could not complete, %d busy pages", busy)
	}

	return nil
}

// optimize refreshes planner statistics of the tables that changed since the last run.
func (m *MaintenanceCoordinator) optimize(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, "PRAGMA optimize")
	return err
}

func (m *MaintenanceCoordinator) vacuum(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, "VACUUM"); err != nil {
		if strings.Contains(err.Error(), "database is locked") {
			return fmt.Errorf("database is locked (retry later): %w", err)
		}
		return err
	}
	return nil
}

// AcquireOperationLock acquires a read lock for database operations.
func (m *MaintenanceCoordinator) AcquireOperationLock() func() {
	m.opLock.RLock()
	return m.opLock.RUnlock
}

// GetMetrics returns the outcome of the last runs.
func (m *MaintenanceCoordinator) GetMetrics() MaintenanceMetrics {
	m.metricsLock.Lock()
	defer m.metricsLock.Unlock()

	return m.metrics
}

// NoOpMaintenance satisfies Maintenance without touching the database.
type NoOpMaintenance struct{}

func (NoOpMaintenance) AcquireOperationLock() func()             { return func() {} }
func (NoOpMaintenance) RunMaintenance(ctx context.Context) error { return nil }
func (NoOpMaintenance) GetMetrics() MaintenanceMetrics           { return MaintenanceMetrics{} }
