package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

var _ store.CursorStore = (*CursorStore)(nil)

// CursorStore implements store.CursorStore on the poll_cursors table.
type CursorStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewCursorStore creates a new SQLite-backed CursorStore.
func NewCursorStore(db *sql.DB, log *logger.Logger) *CursorStore {
	return &CursorStore{
		db:  db,
		log: log,
	}
}

// Get returns the last consumed block of contract or 0 if the contract was never polled.
func (s *CursorStore) Get(ctx context.Context, contract itypes.Contract) (uint64, error) {
	var block uint64
	err := s.db.QueryRowContext(ctx,
		`SELECT last_block_number FROM poll_cursors WHERE contract = ?`, contract.String()).Scan(&block)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load cursor of %s: %w", contract, err)
	}

	return block, nil
}

// Upsert advances the cursor of contract. Lower values than the stored one are ignored.
func (s *CursorStore) Upsert(ctx context.Context, contract itypes.Contract, blockNumber uint64) error {
	const query = `
		INSERT INTO poll_cursors (contract, last_block_number, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(contract) DO UPDATE SET
			last_block_number = MAX(poll_cursors.last_block_number, excluded.last_block_number),
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, contract.String(), blockNumber, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to update cursor of %s to %d: %w", contract, blockNumber, err)
	}

	s.log.Debugf("cursor of %s moved to %d", contract, blockNumber)
	CursorBlockLog(contract.String(), blockNumber)

	return nil
}
