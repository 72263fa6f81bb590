package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
)

//go:embed 001_raw_events.sql
var mig001 string

//go:embed 002_domain.sql
var mig002 string

//go:embed 003_queue.sql
var mig003 string

//go:embed 004_raw_event_dead_letter.sql
var mig004 string

// All returns every schema migration in apply order.
func All() []db.Migration {
	return []db.Migration{
		{ID: "001_raw_events.sql", SQL: mig001},
		{ID: "002_domain.sql", SQL: mig002},
		{ID: "003_queue.sql", SQL: mig003},
		{ID: "004_raw_event_dead_letter.sql", SQL: mig004},
	}
}

// RunMigrations applies every pending migration to the configured database.
func RunMigrations(cfg config.DatabaseConfig) error {
	return db.RunMigrations(cfg, All())
}

// RunMigrationsDB applies every pending migration to an open database.
func RunMigrationsDB(log *logger.Logger, sqlDB *sql.DB) error {
	return db.RunMigrationsDB(log, sqlDB, All())
}
