// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/migrations"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/stretchr/testify/require"
)

// NewMigratedDB opens a fresh SQLite database under t.TempDir with every migration applied.
func NewMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.sqlite")}
	cfg.ApplyDefaults()

	sqlDB, err := db.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.RunMigrationsDB(logger.NewNopLogger(), sqlDB))

	return sqlDB
}
