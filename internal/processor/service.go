package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// Service is the single entry point for processing a raw event, used by the queue consumer,
// the CLI and the admin API alike. Processing of one contract is serialized across callers.
type Service struct {
	cfg      config.ProcessorConfig
	events   store.RawEventStore
	registry *Registry
	lock     func() func()
	log      *logger.Logger

	contractsMu sync.Mutex
	contracts   map[itypes.Contract]*sync.Mutex
}

func NewService(cfg config.ProcessorConfig, events store.RawEventStore, registry *Registry, log *logger.Logger) *Service {
	return &Service{
		cfg:       cfg,
		events:    events,
		registry:  registry,
		lock:      func() func() { return func() {} },
		log:       log,
		contracts: make(map[itypes.Contract]*sync.Mutex),
	}
}

// WithOperationLock makes every batch run under the given lock.
func (s *Service) WithOperationLock(acquire func() func()) *Service {
	s.lock = acquire
	return s
}

// ProcessEvent processes the raw event with the given id together with every unprocessed event
// of its contract positioned before it, in (block number, log index) order.
func (s *Service) ProcessEvent(ctx context.Context, rawEventID int64) (*Outcome, error) {
	raw, err := s.events.Get(ctx, rawEventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrRawEventNotFound, rawEventID)
		}
		return nil, err
	}

	outcome := &Outcome{RawEventID: raw.ID, Contract: raw.Contract}

	if raw.Processed {
		outcome.Status = StatusAlreadyProcessed
		return outcome, nil
	}

	proc, ok := s.registry.Get(raw.Contract)
	if !ok {
		s.log.Warnf("no processor registered for %s, raw event %d stays unprocessed", raw.Contract, raw.ID)
		EventsInc(raw.Contract.String(), OutcomeMissingProcessor, 1)
		outcome.Status = StatusMissingProcessor
		return outcome, nil
	}

	mu := s.contractLock(raw.Contract)
	mu.Lock()
	defer mu.Unlock()

	for {
		batch, err := s.events.ListUnprocessedUpTo(ctx, raw.Contract, raw.BlockNumber, raw.BlockIndex, s.cfg.BatchSize)
		if err != nil {
			return outcome, err
		}
		if len(batch) == 0 {
			break
		}

		result, err := s.processBatch(ctx, proc, batch)
		if err != nil {
			return outcome, s.handleError(ctx, raw, err)
		}

		outcome.Batches++
		outcome.Result.Add(result)

		if len(batch) < s.cfg.BatchSize {
			break
		}
	}

	if outcome.Batches == 0 {
		// processed by a concurrent caller while waiting for the contract lock
		outcome.Status = StatusAlreadyProcessed
		return outcome, nil
	}

	outcome.Status = StatusProcessed
	s.log.Debugf("processed raw event %d of %s in %d batches: %+v",
		raw.ID, raw.Contract, outcome.Batches, outcome.Result)

	return outcome, nil
}

func (s *Service) contractLock(contract itypes.Contract) *sync.Mutex {
	s.contractsMu.Lock()
	defer s.contractsMu.Unlock()

	mu, ok := s.contracts[contract]
	if !ok {
		mu = &sync.Mutex{}
		s.contracts[contract] = mu
	}
	return mu
}

func (s *Service) processBatch(ctx context.Context, proc EventProcessor, batch []*store.RawEvent) (*BatchResult, error) {
	unlock := s.lock()
	defer unlock()

	start := time.Now()
	defer func() { BatchDurationLog(proc.Contract().String(), time.Since(start)) }()

	return proc.ProcessEvents(ctx, batch)
}

func (s *Service) handleError(ctx context.Context, raw *store.RawEvent, err error) error {
	if errors.Is(err, rpc.ErrRateLimited) {
		EventsInc(raw.Contract.String(), OutcomeRateLimited, 1)
		s.log.Warnf("rate limited processing raw event %d, backing off %s", raw.ID, s.cfg.RateLimitBackoff)

		timer := time.NewTimer(s.cfg.RateLimitBackoff.Duration)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}

		return err
	}

	EventsInc(raw.Contract.String(), OutcomeFailed, 1)
	s.log.Errorf("failed to process raw event %d of %s: %v", raw.ID, raw.Contract, err)

	return err
}
