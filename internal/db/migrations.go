package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	UpDownSeparator   = "-- +migrate Up"
	DownMarker        = "-- +migrate Down"
	NoLimitMigrations = 0 // indicate that there is no limit on the number of migrations to run

	migrationDirections = 2
)

// Migration is one embedded SQL file with a Down section followed by an Up section.
type Migration struct {
	ID  string
	SQL string
}

// RunMigrations opens the configured database and applies every pending migration.
func RunMigrations(cfg config.DatabaseConfig, migrations []Migration) error {
	db, err := NewSQLiteDB(cfg)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()

	return RunMigrationsDB(logger.GetDefaultLogger(), db, migrations)
}

// RunMigrationsDB applies every pending migration on an open database.
func RunMigrationsDB(log *logger.Logger, db *sql.DB, migrations []Migration) error {
	return RunMigrationsDBExtended(log, db, migrations, migrate.Up, NoLimitMigrations)
}

// RunMigrationsDBExtended is an extended version of RunMigrationsDB that allows
// dir: can be migrate.Up or migrate.Down
// maxMigrations: Will apply at most `max` migrations. Pass 0 for no limit
func RunMigrationsDBExtended(log *logger.Logger,
	db *sql.DB,
	migrations []Migration,
	dir migrate.MigrationDirection,
	maxMigrations int) error {
	source, err := toMemorySource(migrations)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(source.Migrations))
	for _, m := range source.Migrations {
		ids = append(ids, m.Id)
	}
	listed := strings.Join(ids, ", ")

	log.Debugf("running migrations: (max %d/%d) migrations: %s", maxMigrations, len(ids), listed)

	applied, err := migrate.ExecMax(db, "sqlite3", source, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("error executing migration (max %d/%d) migrations: %s . Err: %w",
			maxMigrations, len(ids), listed, err)
	}

	log.Infof("successfully ran %d migrations from migrations: %s", applied, listed)
	return nil
}

func toMemorySource(migrations []Migration) (*migrate.MemoryMigrationSource, error) {
	source := &migrate.MemoryMigrationSource{Migrations: make([]*migrate.Migration, 0, len(migrations))}

	for _, m := range migrations {
		parts := strings.Split(m.SQL, UpDownSeparator)
		if len(parts) < migrationDirections {
			return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, UpDownSeparator)
		}

		down := parts[0]
		if idx := strings.Index(down, DownMarker); idx != -1 {
			down = down[idx+len(DownMarker):]
		}

		source.Migrations = append(source.Migrations, &migrate.Migration{
			Id:   m.ID,
			Up:   []string{strings.TrimSpace(parts[1])},
			Down: []string{strings.TrimSpace(down)},
		})
	}

	return source, nil
}
