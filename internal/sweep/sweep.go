// Package sweep hands stored raw events over to the event processing queue.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/samber/lo"
)

// Result counts the events a sweep enqueued.
type Result struct {
	Enqueued int `json:"enqueued"`
	Batches  int `json:"batches"`
}

// Sweeper enqueues processing jobs for raw events.
type Sweeper struct {
	cfg       config.SweepConfig
	contracts []itypes.Contract
	events    store.RawEventStore
	broker    queue.Broker
	log       *logger.Logger
	now       func() time.Time
}

// New creates a sweeper. Only events of contracts are ever requeued, which are the contracts
// with a registered processor.
func New(cfg config.SweepConfig, contracts []itypes.Contract, events store.RawEventStore,
	broker queue.Broker, log *logger.Logger) *Sweeper {
	return &Sweeper{
		cfg:       cfg,
		contracts: contracts,
		events:    events,
		broker:    broker,
		log:       log,
		now:       time.Now,
	}
}

// Run enqueues every raw event without a processing job, oldest position first.
func (s *Sweeper) Run(ctx context.Context) (*Result, error) {
	result, err := s.sweep(ctx, func(ctx context.Context) ([]*store.RawEvent, error) {
		return s.events.ListPendingJobs(ctx, s.cfg.BatchSize)
	})
	if err != nil {
		return result, fmt.Errorf("backfill sweep failed: %w", err)
	}

	if result.Enqueued > 0 {
		s.log.Infof("backfill sweep enqueued %d raw events", result.Enqueued)
	}
	SweptInc(kindBackfill, result.Enqueued)

	return result, nil
}

// RequeueUnprocessed enqueues again the events whose job was lost: enqueued longer than
// StaleAfter ago, still unprocessed and never dead-lettered. Events of contracts without a
// processor are left alone until one is registered. Nothing is requeued while the event
// processing queue still holds messages, since those jobs are not lost.
func (s *Sweeper) RequeueUnprocessed(ctx context.Context) (*Result, error) {
	depth, err := s.broker.Depth(ctx, queue.EventProcessing)
	if err != nil {
		return &Result{}, fmt.Errorf("requeue of unprocessed events failed: %w", err)
	}
	if depth > 0 {
		s.log.Debugf("skipping requeue, %d event processing jobs still queued", depth)
		return &Result{}, nil
	}

	olderThan := s.now().Add(-s.cfg.StaleAfter.Duration)

	result, err := s.sweep(ctx, func(ctx context.Context) ([]*store.RawEvent, error) {
		return s.events.ListStale(ctx, s.contracts, olderThan, s.cfg.BatchSize)
	})
	if err != nil {
		return result, fmt.Errorf("requeue of unprocessed events failed: %w", err)
	}

	if result.Enqueued > 0 {
		s.log.Warnf("requeued %d raw events unprocessed since %s", result.Enqueued, olderThan.Format(time.RFC3339))
	}
	SweptInc(kindRequeue, result.Enqueued)

	return result, nil
}

// sweep drains list batch by batch. Marking an event refreshes its updated_at, which removes it
// from both listings.
func (s *Sweeper) sweep(ctx context.Context, list func(ctx context.Context) ([]*store.RawEvent, error)) (*Result, error) {
	result := &Result{}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := list(ctx)
		if err != nil {
			return result, err
		}
		if len(batch) == 0 {
			return result, nil
		}

		enqueued, enqueueErr := s.enqueue(ctx, batch)
		if len(enqueued) > 0 {
			if err := s.events.MarkJobCreated(ctx, enqueued); err != nil {
				return result, err
			}
			result.Enqueued += len(enqueued)
		}
		if enqueueErr != nil {
			return result, enqueueErr
		}
		result.Batches++

		if len(batch) < s.cfg.BatchSize {
			return result, nil
		}
	}
}

// enqueue returns the ids that were enqueued before the first failure.
func (s *Sweeper) enqueue(ctx context.Context, batch []*store.RawEvent) ([]int64, error) {
	ids := lo.Map(batch, func(raw *store.RawEvent, _ int) int64 { return raw.ID })

	for i, id := range ids {
		if _, err := s.broker.Enqueue(ctx, queue.EventProcessing, queue.EventJob{RawEventID: id}); err != nil {
			return ids[:i], fmt.Errorf("failed to enqueue raw event %d: %w", id, err)
		}
	}

	return ids, nil
}
