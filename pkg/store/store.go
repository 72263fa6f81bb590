package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
)

// ErrNotFound is returned when a raw event with the requested id does not exist.
var ErrNotFound = errors.New("store: raw event not found")

// RawEvent is one observed on-chain log.
// The provider log is kept verbatim so that processors can decode it against any ABI revision.
type RawEvent struct {
	ID          int64           `meddler:"id,pk" json:"id"`
	Contract    itypes.Contract `meddler:"contract" json:"contract"`
	Log         *types.Log      `meddler:"log_data,json" json:"log"`
	BlockNumber uint64          `meddler:"block_number" json:"blockNumber"`
	BlockIndex  uint            `meddler:"block_index" json:"blockIndex"`
	TxHash      common.Hash     `meddler:"tx_hash,hash" json:"txHash"`
	Processed   bool            `meddler:"processed" json:"processed"`
	JobCreated  bool            `meddler:"job_created" json:"jobCreated"`
	CreatedAt   int64           `meddler:"created_at" json:"createdAt"`
	UpdatedAt   int64           `meddler:"updated_at" json:"updatedAt"`
	// DeadLettered is set while the last delivery of the processing job runs and kept when it fails.
	DeadLettered bool `meddler:"dead_lettered" json:"deadLettered"`
}

// ListFilter narrows RawEventStore.List. Nil fields match everything.
type ListFilter struct {
	Contract  *itypes.Contract
	Processed *bool
	Limit     int
	Offset    int
}

// ContractStats summarizes ingestion and processing progress of one contract.
type ContractStats struct {
	Contract        itypes.Contract `meddler:"contract" json:"contract"`
	LastBlockNumber uint64          `meddler:"last_block_number" json:"lastBlockNumber"`
	Total           uint64          `meddler:"total" json:"total"`
	Unprocessed     uint64          `meddler:"unprocessed" json:"unprocessed"`
	PendingJobs     uint64          `meddler:"pending_jobs" json:"pendingJobs"`
	DeadLettered    uint64          `meddler:"dead_lettered" json:"deadLettered"`
}

// RawEventStore persists raw events idempotently and tracks their processing flags.
type RawEventStore interface {
	// TryCreate stores log for contract. It reports false without error when the
	// (contract, tx hash, log index) triple is already stored.
	TryCreate(ctx context.Context, contract itypes.Contract, log *types.Log) (bool, error)

	// Get returns the raw event with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (*RawEvent, error)

	// List returns raw events ordered by id.
	List(ctx context.Context, filter ListFilter) ([]*RawEvent, error)

	// ListUnprocessedUpTo returns unprocessed events of contract positioned at or before
	// (blockNumber, blockIndex), ordered by (block_number, block_index).
	ListUnprocessedUpTo(ctx context.Context, contract itypes.Contract,
		blockNumber uint64, blockIndex uint, limit int) ([]*RawEvent, error)

	// ListPendingJobs returns events that have no processing job yet, ordered by (block_number, block_index).
	ListPendingJobs(ctx context.Context, limit int) ([]*RawEvent, error)

	// ListStale returns enqueued, unprocessed and not dead-lettered events of contracts
	// last touched before olderThan.
	ListStale(ctx context.Context, contracts []itypes.Contract, olderThan time.Time, limit int) ([]*RawEvent, error)

	// MarkJobCreated flags events as enqueued and refreshes their updated_at.
	MarkJobCreated(ctx context.Context, ids []int64) error

	// MarkDeadLettered flags events whose processing job exhausted its deliveries.
	MarkDeadLettered(ctx context.Context, ids []int64) error

	// MarkProcessed flags events as processed inside tx and clears their dead-lettered flag.
	// Already processed rows are left untouched.
	MarkProcessed(ctx context.Context, tx *sql.Tx, ids []int64) error

	// Stats returns per contract progress for every contract with a cursor or an event.
	Stats(ctx context.Context) ([]*ContractStats, error)
}

// CursorStore persists the last consumed block per contract.
type CursorStore interface {
	// Get returns the last consumed block of contract, 0 when none was stored.
	Get(ctx context.Context, contract itypes.Contract) (uint64, error)

	// Upsert moves the cursor of contract to blockNumber. The cursor never moves backwards.
	Upsert(ctx context.Context, contract itypes.Contract, blockNumber uint64) error
}
