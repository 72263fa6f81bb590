package db

import (
	"database/sql"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"

	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T, journal string) (*sql.DB, string, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "vacuum_test.db")

	dbConfig := config.DatabaseConfig{Path: dbPath, JournalMode: journal}
	dbConfig.ApplyDefaults()

	sqlDB, err := NewSQLiteDB(dbConfig)
	require.NoError(t, err)

	// Insert test table
	_, err = sqlDB.Exec(`CREATE TABLE IF NOT EXISTS test_table (id INTEGER PRIMARY KEY, value TEXT);`)
	require.NoError(t, err)

	// Insert test data
	for i := range 5000 {
		_, err = sqlDB.Exec(`INSERT INTO test_table (value) VALUES (?);`, fmt.Sprintf("value_%d", i))
		require.NoError(t, err)
	}

	cleanup := func() {
		sqlDB.Close()
	}

	return sqlDB, dbPath, cleanup
}

func TestVacuum_Modes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		journalMode string
	}{
		{name: "WAL", journalMode: "WAL"},
		{name: "NonWAL", journalMode: "TRUNCATE"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			db, dbPath, cleanup := setupTestDB(t, tc.journalMode)
			defer cleanup()

			initialSize, err := DBTotalSize(dbPath)
			require.NoError(t, err)

			require.NoError(t, Vacuum(db))

			finalSize, err := DBTotalSize(dbPath)
			require.NoError(t, err)

			require.LessOrEqual(t, finalSize, initialSize)
		})
	}
}

func TestDBTotalSize(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string // suffix -> content
		expected int64
	}{
		{name: "MainOnly", files: map[string]string{"": "main-db-content"}, expected: 15},
		{
			name:     "WithWALAndSHM",
			files:    map[string]string{"": "main-db", "-wal": "wal-content", "-shm": "shm-content"},
			expected: 29,
		},
		{name: "MissingFiles", files: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mainPath := filepath.Join(t.TempDir(), "main.db")
			for suffix, content := range tc.files {
				require.NoError(t, os.WriteFile(mainPath+suffix, []byte(content), 0o600))
			}

			size, err := DBTotalSize(mainPath)
			require.NoError(t, err)
			require.Equal(t, tc.expected, size)
		})
	}
}

type meddlerRow struct {
	ID      int64           `meddler:"id,pk"`
	Address common.Address  `meddler:"address,address"`
	Hash    *common.Hash    `meddler:"hash,hash"`
	Amount  *big.Int        `meddler:"amount,bigint"`
	Missing *common.Address `meddler:"missing,address"`
}

func TestMeddlers_RoundTrip(t *testing.T) {
	sqlDB, _, cleanup := setupTestDB(t, "WAL")
	defer cleanup()

	_, err := sqlDB.Exec(`CREATE TABLE meddler_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		address TEXT, hash TEXT, amount TEXT, missing TEXT)`)
	require.NoError(t, err)

	amount, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)
	hash := common.HexToHash("0xabc")

	row := &meddlerRow{
		Address: common.HexToAddress("0x00000000000000000000000000000000000000AB"),
		Hash:    &hash,
		Amount:  amount,
	}
	require.NoError(t, meddler.Insert(sqlDB, "meddler_rows", row))

	var stored string
	require.NoError(t, sqlDB.QueryRow(`SELECT address FROM meddler_rows WHERE id = ?`, row.ID).Scan(&stored))
	require.Equal(t, "0x00000000000000000000000000000000000000ab", stored)

	var loaded meddlerRow
	require.NoError(t, meddler.Load(sqlDB, "meddler_rows", &loaded, row.ID))
	require.Equal(t, row.Address, loaded.Address)
	require.Equal(t, hash, *loaded.Hash)
	require.Zero(t, amount.Cmp(loaded.Amount))
	require.Nil(t, loaded.Missing)
}

func TestIsUniqueConstraintError(t *testing.T) {
	sqlDB, _, cleanup := setupTestDB(t, "WAL")
	defer cleanup()

	_, err := sqlDB.Exec(`CREATE TABLE uniq (a TEXT NOT NULL, b INTEGER NOT NULL, UNIQUE (a, b))`)
	require.NoError(t, err)

	_, err = sqlDB.Exec(`INSERT INTO uniq (a, b) VALUES ('x', 1)`)
	require.NoError(t, err)

	_, err = sqlDB.Exec(`INSERT INTO uniq (a, b) VALUES ('x', 1)`)
	require.Error(t, err)
	require.True(t, IsUniqueConstraintError(err))
	require.True(t, IsUniqueConstraintError(fmt.Errorf("wrapped: %w", err)))

	_, err = sqlDB.Exec(`INSERT INTO uniq (a, b) VALUES (NULL, 1)`)
	require.Error(t, err)
	require.False(t, IsUniqueConstraintError(err), "NOT NULL violation is not a duplicate")

	require.False(t, IsUniqueConstraintError(nil))
	require.False(t, IsUniqueConstraintError(sql.ErrNoRows))
}
