package processor

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// ErrRawEventNotFound is returned when processing an event id that was never stored.
var ErrRawEventNotFound = errors.New("processor: raw event not found")

// Wrangled is a contract event variant together with the raw event it was decoded from.
type Wrangled[E any] struct {
	Event  E
	Raw    *store.RawEvent
	Parsed *ParsedLog
}

// Prepared is the outcome of preparing a batch.
type Prepared[P any] struct {
	Payload P
	// Invalidations are enqueued once the payload is committed.
	Invalidations []score.RecomputeJob
	// NotFound lists raw events dropped because their entity does not exist on chain.
	// They are still marked processed.
	NotFound []*store.RawEvent
}

// Handler is implemented once per contract. E is the contract's event union and P its batch payload.
type Handler[E any, P any] interface {
	Contract() itypes.Contract

	// ABI returns the contract events, the shared administrative events included.
	ABI() abi.ABI

	// IgnoreEvents lists contract specific events acknowledged without effect.
	IgnoreEvents() []string

	// WrangleEvent maps a decoded log onto the event union. It reports false for unknown events.
	WrangleEvent(parsed *ParsedLog) (E, bool)

	// PreparePayload re-reads authoritative state and collapses the batch into one payload.
	// Events whose entity is not found are reported in Prepared.NotFound instead of failing the batch.
	PreparePayload(ctx context.Context, events []Wrangled[E]) (*Prepared[P], error)

	// SubmitPayload writes the payload inside tx.
	SubmitPayload(ctx context.Context, tx *sql.Tx, payload P) error
}

// EventProcessor is a Handler with its type parameters erased.
type EventProcessor interface {
	Contract() itypes.Contract

	// GetLogs returns the logs of the contract in the inclusive block range.
	GetLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error)

	// ProcessEvents applies the raw events, which must belong to the contract and be ordered
	// by position. Every event of the batch is marked processed when it returns without error.
	ProcessEvents(ctx context.Context, events []*store.RawEvent) (*BatchResult, error)
}

// Deps are the collaborators shared by every EventProcessor.
type Deps struct {
	DB          *sql.DB
	Client      rpc.ChainClient
	Events      store.RawEventStore
	Invalidator score.Invalidator
	Log         *logger.Logger
}

// BatchResult counts what happened to the events of one ProcessEvents call.
type BatchResult struct {
	Applied       int `json:"applied"`
	Ignored       int `json:"ignored"`
	Invalid       int `json:"invalid"`
	NotFound      int `json:"notFound"`
	Invalidations int `json:"invalidations"`
}

// Add accumulates other into r.
func (r *BatchResult) Add(other *BatchResult) {
	if other == nil {
		return
	}
	r.Applied += other.Applied
	r.Ignored += other.Ignored
	r.Invalid += other.Invalid
	r.NotFound += other.NotFound
	r.Invalidations += other.Invalidations
}

// Total is the number of events the result accounts for.
func (r *BatchResult) Total() int {
	return r.Applied + r.Ignored + r.Invalid + r.NotFound
}

// Status is the outcome of Service.ProcessEvent.
type Status string

const (
	StatusProcessed        Status = "processed"
	StatusAlreadyProcessed Status = "already_processed"
	StatusMissingProcessor Status = "missing_processor"
)

// Outcome describes a Service.ProcessEvent call.
type Outcome struct {
	RawEventID int64           `json:"rawEventId"`
	Contract   itypes.Contract `json:"contract"`
	Status     Status          `json:"status"`
	Batches    int             `json:"batches"`
	Result     BatchResult     `json:"result"`
}

// TxHash returns a pointer to the transaction hash of the raw event.
func TxHash(raw *store.RawEvent) *common.Hash {
	h := raw.TxHash
	return &h
}
