package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	irpc "github.com/goran-ethernal/ReputationIndexor/internal/rpc"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// ErrUnknownContract is returned when polling a contract that has no configured address.
var ErrUnknownContract = errors.New("poller: contract is not configured")

// PollResult describes one poll invocation.
type PollResult struct {
	Contract itypes.Contract
	// From is the first requested block.
	From uint64
	// To is the last block whose logs were fetched, From-1 when nothing was fetched.
	To         uint64
	Logs       int
	Created    int
	Duplicates int
	// Cursor is the cursor value after the poll.
	Cursor uint64
	// StopReason is set when the loop stopped before reaching the stop block.
	StopReason error
}

type target struct {
	address    common.Address
	startBlock uint64
}

// Poller fetches new logs of the configured contracts and stores them as raw events.
type Poller struct {
	cfg     config.PollerConfig
	client  rpc.ChainClient
	events  store.RawEventStore
	cursors store.CursorStore
	targets map[itypes.Contract]target
	log     *logger.Logger
	// lock is held for the duration of the store phase so maintenance does not interleave with writes
	lock func() func()
}

// New creates a Poller for the given contracts.
func New(
	cfg config.PollerConfig,
	contracts []config.ContractConfig,
	client rpc.ChainClient,
	events store.RawEventStore,
	cursors store.CursorStore,
	log *logger.Logger,
) *Poller {
	targets := make(map[itypes.Contract]target, len(contracts))
	for _, c := range contracts {
		targets[c.Contract()] = target{
			address:    common.HexToAddress(c.Address),
			startBlock: c.StartBlock,
		}
	}

	return &Poller{
		cfg:     cfg,
		client:  client,
		events:  events,
		cursors: cursors,
		targets: targets,
		log:     log,
		lock:    func() func() { return func() {} },
	}
}

// WithOperationLock makes the store phase of every poll run under the given lock.
func (p *Poller) WithOperationLock(acquire func() func()) *Poller {
	p.lock = acquire
	return p
}

// Contracts returns the contracts this poller is configured for.
func (p *Poller) Contracts() []itypes.Contract {
	contracts := make([]itypes.Contract, 0, len(p.targets))
	for _, c := range itypes.AllContracts {
		if _, ok := p.targets[c]; ok {
			contracts = append(contracts, c)
		}
	}
	return contracts
}

// Poll fetches the logs of contract after its cursor, stores them and advances the cursor.
// currentBlockLimit bounds the poll when supplied, otherwise one poll covers at most poller.max_window blocks.
// Provider errors stop the fetch loop but the logs gathered so far are still stored.
func (p *Poller) Poll(ctx context.Context, contract itypes.Contract, currentBlockLimit *uint64) (*PollResult, error) {
	t, ok := p.targets[contract]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, contract)
	}

	last, err := p.cursors.Get(ctx, contract)
	if err != nil {
		return nil, err
	}

	from := last + 1
	if t.startBlock > 0 && last+1 < t.startBlock {
		from = t.startBlock
	}

	stop := from + p.cfg.MaxWindow
	if currentBlockLimit != nil {
		stop = *currentBlockLimit
	}

	result := &PollResult{Contract: contract, From: from, To: from - 1, Cursor: last}
	if from > stop {
		p.log.Debugf("%s is up to date at block %d (limit %d)", contract, last, stop)
		return result, nil
	}

	logs, to, stopReason := p.fetch(ctx, contract, t.address, from, stop)
	result.To = to
	result.Logs = len(logs)
	result.StopReason = stopReason

	if stopReason != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		p.log.Warnf("poll of %s stopped at block %d: %v", contract, to, stopReason)
	}

	if err := p.store(ctx, contract, logs, result); err != nil {
		return result, err
	}

	p.log.Infof("polled %s blocks [%d, %d]: %d logs, %d new, %d duplicates, cursor %d",
		contract, result.From, result.To, result.Logs, result.Created, result.Duplicates, result.Cursor)

	return result, nil
}

// fetch walks [from, stop] with an adaptive window.
// It returns the logs gathered, the last block covered and the error that stopped the loop early, if any.
func (p *Poller) fetch(ctx context.Context, contract itypes.Contract, address common.Address,
	from, stop uint64) ([]types.Log, uint64, error) {
	var (
		logs        []types.Log
		window      = max(min(p.cfg.InitialWindow, p.cfg.MaxWindow), 1)
		covered     = from - 1
		rateLimited int
	)

	for from <= stop {
		if err := ctx.Err(); err != nil {
			return logs, covered, err
		}

		to := min(from+window-1, stop)
		if to < from { // overflow
			to = stop
		}

		batch, err := p.client.GetLogs(ctx, address, from, to)
		switch {
		case err == nil:
			logs = append(logs, batch...)
			covered = to
			from = to + 1
			window = min(window*2, p.cfg.MaxWindow) //nolint:mnd
			PollRequestInc(contract.String(), "ok")

		case errors.Is(err, rpc.ErrResponseTooLarge):
			PollRequestInc(contract.String(), "too_large")
			if window == 1 {
				return logs, covered, fmt.Errorf("block %d alone is too large: %w", from, err)
			}
			// only the end of a suggested range is used, from never moves on a failed request
			if _, suggestedTo, ok := irpc.SuggestedBlockRange(err); ok && suggestedTo >= from && suggestedTo < to {
				window = suggestedTo - from + 1
				p.log.Debugf("response for %s [%d, %d] too large, provider suggested window %d",
					contract, from, to, window)
				break
			}
			window /= 2
			p.log.Debugf("response for %s [%d, %d] too large, window shrunk to %d", contract, from, to, window)

		case errors.Is(err, rpc.ErrRateLimited):
			PollRequestInc(contract.String(), "rate_limited")
			rateLimited++
			if rateLimited > p.cfg.MaxRateLimitRetries {
				return logs, covered, err
			}
			p.log.Debugf("rate limited polling %s, backing off %s", contract, p.cfg.RateLimitBackoff)
			if err := sleep(ctx, p.cfg.RateLimitBackoff.Duration); err != nil {
				return logs, covered, err
			}

		default:
			PollRequestInc(contract.String(), "error")
			return logs, covered, err
		}

		PollWindowLog(contract.String(), window)
	}

	return logs, covered, nil
}

func (p *Poller) store(ctx context.Context, contract itypes.Contract, logs []types.Log, result *PollResult) error {
	if len(logs) == 0 {
		return nil
	}

	unlock := p.lock()
	defer unlock()

	var maxBlock uint64
	for i := range logs {
		created, err := p.events.TryCreate(ctx, contract, &logs[i])
		if err != nil {
			return err
		}
		if created {
			result.Created++
		} else {
			result.Duplicates++
		}
		maxBlock = max(maxBlock, logs[i].BlockNumber)
	}

	if err := p.cursors.Upsert(ctx, contract, max(result.Cursor, maxBlock)); err != nil {
		return err
	}
	result.Cursor = max(result.Cursor, maxBlock)

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
