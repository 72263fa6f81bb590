// Package scheduler drives polling: on every tick each contract is polled up to the
// confirmed head, then one backfill sweep hands the new raw events to the processing queue.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	icommon "github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/metrics"
	"github.com/goran-ethernal/ReputationIndexor/internal/poller"
	"github.com/goran-ethernal/ReputationIndexor/internal/sweep"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

// Poller polls one contract.
type Poller interface {
	Contracts() []itypes.Contract
	Poll(ctx context.Context, contract itypes.Contract, currentBlockLimit *uint64) (*poller.PollResult, error)
}

// Sweeper enqueues the raw events without processing job.
type Sweeper interface {
	Run(ctx context.Context) (*sweep.Result, error)
}

var (
	_ Poller  = (*poller.Poller)(nil)
	_ Sweeper = (*sweep.Sweeper)(nil)
)

// TickResult describes one tick.
type TickResult struct {
	ConfirmedBlock uint64
	Polls          []*poller.PollResult
	Failed         []itypes.Contract
	Swept          int
}

// PollScheduler runs a tick every poller.interval.
type PollScheduler struct {
	interval time.Duration
	finality itypes.BlockFinality
	lag      uint64
	client   rpc.ChainClient
	poller   Poller
	sweeper  Sweeper
	log      *logger.Logger
}

func NewPollScheduler(
	chain config.ChainConfig,
	pollerCfg config.PollerConfig,
	client rpc.ChainClient,
	p Poller,
	sweeper Sweeper,
	log *logger.Logger,
) (*PollScheduler, error) {
	finality, err := itypes.ParseBlockFinality(chain.Finality)
	if err != nil {
		return nil, err
	}

	return &PollScheduler{
		interval: pollerCfg.Interval.Duration,
		finality: finality,
		lag:      chain.FinalizedLag,
		client:   client,
		poller:   p,
		sweeper:  sweeper,
		log:      log,
	}, nil
}

// Run ticks at once and then on every interval until ctx is cancelled.
// A tick is never started while the previous one runs.
func (s *PollScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Errorf("poll tick failed: %v", err)
			metrics.ErrorsInc(icommon.ComponentScheduler, "error")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Tick polls every contract sequentially and then sweeps once. A failing contract does not
// keep the others from being polled.
func (s *PollScheduler) Tick(ctx context.Context) (*TickResult, error) {
	start := time.Now()

	confirmed, err := s.client.GetConfirmedBlockNumber(ctx, s.finality, s.lag)
	if err != nil {
		metrics.ComponentHealthSet(icommon.ComponentScheduler, false)
		return nil, fmt.Errorf("failed to get confirmed block: %w", err)
	}
	metrics.ConfirmedBlockSet(confirmed)

	result := &TickResult{ConfirmedBlock: confirmed}
	var errs []error

	for _, contract := range s.poller.Contracts() {
		poll, err := s.poller.Poll(ctx, contract, &confirmed)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			s.log.Errorf("poll of %s failed: %v", contract, err)
			result.Failed = append(result.Failed, contract)
			errs = append(errs, fmt.Errorf("%s: %w", contract, err))
			continue
		}

		result.Polls = append(result.Polls, poll)
		metrics.LastPolledBlockSet(contract.String(), poll.Cursor)
	}

	swept, err := s.sweeper.Run(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	if swept != nil {
		result.Swept = swept.Enqueued
	}

	metrics.ComponentHealthSet(icommon.ComponentScheduler, len(errs) == 0)
	s.log.Debugf("poll tick to block %d done in %s: %d polled, %d failed, %d enqueued",
		confirmed, time.Since(start), len(result.Polls), len(result.Failed), result.Swept)

	return result, errors.Join(errs...)
}
