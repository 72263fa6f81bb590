package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/russross/meddler"
)

var _ store.RawEventStore = (*RawEventStore)(nil)

type RawEvent = store.RawEvent

// RawEventStore implements store.RawEventStore on SQLite.
type RawEventStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewRawEventStore creates a new SQLite-backed RawEventStore.
func NewRawEventStore(db *sql.DB, log *logger.Logger) *RawEventStore {
	return &RawEventStore{
		db:  db,
		log: log,
	}
}

// TryCreate inserts the log as a new raw event. Duplicates are reported as (false, nil).
func (s *RawEventStore) TryCreate(ctx context.Context, contract itypes.Contract, log *types.Log) (bool, error) {
	data, err := json.Marshal(log)
	if err != nil {
		return false, fmt.Errorf("failed to encode log %s:%d: %w", log.TxHash.Hex(), log.Index, err)
	}

	const insertQuery = `
		INSERT INTO raw_events (contract, log_data, block_number, block_index, tx_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, insertQuery,
		contract.String(), string(data), log.BlockNumber, log.Index, log.TxHash.Hex(), now, now)
	if err != nil {
		if db.IsUniqueConstraintError(err) {
			s.log.Debugf("raw event %s:%d of %s already stored", log.TxHash.Hex(), log.Index, contract)
			RawEventDuplicateInc(contract.String())
			return false, nil
		}
		return false, fmt.Errorf("failed to insert raw event %s:%d: %w", log.TxHash.Hex(), log.Index, err)
	}

	RawEventCreatedInc(contract.String())
	return true, nil
}

// Get returns the raw event with the given id.
func (s *RawEventStore) Get(ctx context.Context, id int64) (*RawEvent, error) {
	var event store.RawEvent
	if err := meddler.QueryRow(s.db, &event, `SELECT * FROM raw_events WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("raw event %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load raw event %d: %w", id, err)
	}

	return &event, nil
}

// List returns raw events matching filter ordered by id.
func (s *RawEventStore) List(ctx context.Context, filter store.ListFilter) ([]*RawEvent, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Contract != nil {
		conditions = append(conditions, "contract = ?")
		args = append(args, filter.Contract.String())
	}
	if filter.Processed != nil {
		conditions = append(conditions, "processed = ?")
		args = append(args, *filter.Processed)
	}

	query := "SELECT * FROM raw_events"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC LIMIT ? OFFSET ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	args = append(args, limit, filter.Offset)

	return s.queryAll(ctx, query, args...)
}

// ListUnprocessedUpTo returns unprocessed events of contract at or before the given position.
func (s *RawEventStore) ListUnprocessedUpTo(ctx context.Context, contract itypes.Contract,
	blockNumber uint64, blockIndex uint, limit int) ([]*RawEvent, error) {
	const query = `
		SELECT * FROM raw_events
		WHERE contract = ? AND processed = 0
		  AND (block_number < ? OR (block_number = ? AND block_index <= ?))
		ORDER BY block_number ASC, block_index ASC, id ASC
		LIMIT ?
	`

	return s.queryAll(ctx, query, contract.String(), blockNumber, blockNumber, blockIndex, limit)
}

// ListPendingJobs returns events that were never enqueued for processing.
func (s *RawEventStore) ListPendingJobs(ctx context.Context, limit int) ([]*RawEvent, error) {
	const query = `
		SELECT * FROM raw_events
		WHERE job_created = 0
		ORDER BY block_number ASC, block_index ASC, id ASC
		LIMIT ?
	`

	return s.queryAll(ctx, query, limit)
}

// ListStale returns enqueued events of contracts that are still unprocessed, were never
// dead-lettered and were not touched since olderThan.
func (s *RawEventStore) ListStale(ctx context.Context, contracts []itypes.Contract,
	olderThan time.Time, limit int) ([]*RawEvent, error) {
	if len(contracts) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT * FROM raw_events
		WHERE job_created = 1 AND processed = 0 AND dead_lettered = 0 AND updated_at < ?
		  AND contract IN (%s)
		ORDER BY block_number ASC, block_index ASC, id ASC
		LIMIT ?
	`, placeholders(len(contracts)))

	args := []any{olderThan.Unix()}
	for _, contract := range contracts {
		args = append(args, contract.String())
	}
	args = append(args, limit)

	return s.queryAll(ctx, query, args...)
}

// MarkJobCreated flags the events as enqueued.
func (s *RawEventStore) MarkJobCreated(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE raw_events SET job_created = 1, updated_at = ? WHERE id IN (%s)`, placeholders(len(ids)))

	args := append([]any{time.Now().Unix()}, int64sToArgs(ids)...)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark %d raw events as enqueued: %w", len(ids), err)
	}

	return nil
}

// MarkDeadLettered flags the events as dead-lettered. Processed rows are left untouched.
func (s *RawEventStore) MarkDeadLettered(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`UPDATE raw_events SET dead_lettered = 1, updated_at = ? WHERE processed = 0 AND id IN (%s)`,
		placeholders(len(ids)),
	)

	args := append([]any{time.Now().Unix()}, int64sToArgs(ids)...)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark %d raw events as dead-lettered: %w", len(ids), err)
	}

	return nil
}

// MarkProcessed flags the events as processed inside tx.
func (s *RawEventStore) MarkProcessed(ctx context.Context, tx *sql.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`UPDATE raw_events SET processed = 1, dead_lettered = 0, updated_at = ? WHERE processed = 0 AND id IN (%s)`,
		placeholders(len(ids)),
	)

	args := append([]any{time.Now().Unix()}, int64sToArgs(ids)...)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark %d raw events as processed: %w", len(ids), err)
	}

	return nil
}

// Stats returns per contract progress.
func (s *RawEventStore) Stats(ctx context.Context) ([]*store.ContractStats, error) {
	const query = `
		SELECT c.contract AS contract,
		       COALESCE(pc.last_block_number, 0) AS last_block_number,
		       COALESCE(r.total, 0) AS total,
		       COALESCE(r.unprocessed, 0) AS unprocessed,
		       COALESCE(r.pending_jobs, 0) AS pending_jobs,
		       COALESCE(r.dead_lettered, 0) AS dead_lettered
		FROM (SELECT contract FROM poll_cursors UNION SELECT contract FROM raw_events) c
		LEFT JOIN poll_cursors pc ON pc.contract = c.contract
		LEFT JOIN (
			SELECT contract,
			       COUNT(*) AS total,
			       SUM(CASE WHEN processed = 0 THEN 1 ELSE 0 END) AS unprocessed,
			       SUM(CASE WHEN job_created = 0 THEN 1 ELSE 0 END) AS pending_jobs,
			       SUM(CASE WHEN dead_lettered = 1 AND processed = 0 THEN 1 ELSE 0 END) AS dead_lettered
			FROM raw_events
			GROUP BY contract
		) r ON r.contract = c.contract
		ORDER BY c.contract ASC
	`

	var stats []*store.ContractStats
	if err := meddler.QueryAll(s.db, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to query contract stats: %w", err)
	}

	return stats, nil
}

func (s *RawEventStore) queryAll(ctx context.Context, query string, args ...any) ([]*RawEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw events: %w", err)
	}

	var events []*RawEvent
	if err := meddler.ScanAll(rows, &events); err != nil {
		return nil, fmt.Errorf("failed to scan raw events: %w", err)
	}

	return events, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64sToArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
