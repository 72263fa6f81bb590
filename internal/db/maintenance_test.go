package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/stretchr/testify/require"
)

func setupMaintenanceTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	dbConfig := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "maintenance.db"),
		JournalMode: "WAL",
	}
	dbConfig.ApplyDefaults()

	db, err := NewSQLiteDB(dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS test_data (id INTEGER PRIMARY KEY, data TEXT)`)
	require.NoError(t, err)

	return db, dbConfig.Path
}

func TestMaintenanceCoordinator_Defaults(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)

	coordinator := NewMaintenanceCoordinator(dbPath, db, config.MaintenanceConfig{}, logger.NewNopLogger())
	require.Equal(t, "TRUNCATE", coordinator.config.WALCheckpointMode)
}

func TestMaintenanceCoordinator_RunMaintenance(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)

	for range 1000 {
		_, err := db.Exec("INSERT INTO test_data (data) VALUES (?)", "test data")
		require.NoError(t, err)
	}

	coordinator := NewMaintenanceCoordinator(dbPath, db,
		config.MaintenanceConfig{WALCheckpointMode: "TRUNCATE"}, logger.NewNopLogger())

	require.NoError(t, coordinator.RunMaintenance(context.Background()))

	metrics := coordinator.GetMetrics()
	require.Equal(t, uint64(1), metrics.MaintenanceCount)
	require.False(t, metrics.LastMaintenanceTime.IsZero())
	require.NoError(t, metrics.LastMaintenanceError)
	require.Positive(t, metrics.LastDuration)
}

func TestMaintenanceCoordinator_StepFailuresDoNotStopRun(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)
	require.NoError(t, db.Close())

	coordinator := NewMaintenanceCoordinator(dbPath, db, config.MaintenanceConfig{}, logger.NewNopLogger())

	err := coordinator.RunMaintenance(context.Background())
	require.ErrorContains(t, err, StepCheckpoint)

	metrics := coordinator.GetMetrics()
	require.Equal(t, uint64(1), metrics.MaintenanceCount)
	require.ErrorContains(t, metrics.LastMaintenanceError, "database is closed")
}

func TestMaintenanceCoordinator_ContextCancellation(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)

	coordinator := NewMaintenanceCoordinator(dbPath, db, config.MaintenanceConfig{}, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := coordinator.RunMaintenance(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, coordinator.GetMetrics().MaintenanceCount)
}

func TestMaintenanceCoordinator_MaintenanceWaitsForOperations(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)

	coordinator := NewMaintenanceCoordinator(dbPath, db,
		config.MaintenanceConfig{WALCheckpointMode: "PASSIVE"}, logger.NewNopLogger())

	unlock := coordinator.AcquireOperationLock()

	var finished atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, coordinator.RunMaintenance(context.Background()))
		finished.Store(true)
	}()

	time.Sleep(50 * time.Millisecond)
	require.False(t, finished.Load(), "maintenance must wait for the operation lock")

	unlock()
	<-done
	require.True(t, finished.Load())
}

func TestMaintenanceCoordinator_ConcurrentOperationsDuringMaintenance(t *testing.T) {
	db, dbPath := setupMaintenanceTestDB(t)

	coordinator := NewMaintenanceCoordinator(dbPath, db,
		config.MaintenanceConfig{WALCheckpointMode: "PASSIVE"}, logger.NewNopLogger())

	var wg sync.WaitGroup
	const numOperations = 20
	successCount := atomic.Int32{}

	for range numOperations {
		wg.Go(func() {
			for range 5 {
				unlock := coordinator.AcquireOperationLock()
				_, err := db.Exec("INSERT INTO test_data (data) VALUES (?)", "test data")
				unlock()

				if err == nil {
					successCount.Add(1)
				}
				time.Sleep(time.Millisecond)
			}
		})
	}

	wg.Go(func() {
		for range 3 {
			require.NoError(t, coordinator.RunMaintenance(context.Background()))
			time.Sleep(10 * time.Millisecond)
		}
	})

	wg.Wait()

	require.Equal(t, int32(numOperations*5), successCount.Load())
	require.Equal(t, uint64(3), coordinator.GetMetrics().MaintenanceCount)
}

func TestNoOpMaintenance(t *testing.T) {
	var m Maintenance = NoOpMaintenance{}

	m.AcquireOperationLock()()
	require.NoError(t, m.RunMaintenance(context.Background()))
	require.Zero(t, m.GetMetrics().MaintenanceCount)
}
