package processor

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

type eventProcessor[E any, P any] struct {
	handler Handler[E, P]
	abi     abi.ABI
	ignore  map[string]struct{}
	address common.Address
	deps    Deps
	log     *logger.Logger
}

// New wraps handler into an EventProcessor reading logs of address.
func New[E any, P any](handler Handler[E, P], address common.Address, deps Deps) EventProcessor {
	ignore := make(map[string]struct{}, len(GlobalIgnoreEvents)+len(handler.IgnoreEvents()))
	for _, name := range GlobalIgnoreEvents {
		ignore[name] = struct{}{}
	}
	for _, name := range handler.IgnoreEvents() {
		ignore[name] = struct{}{}
	}

	return &eventProcessor[E, P]{
		handler: handler,
		abi:     handler.ABI(),
		ignore:  ignore,
		address: address,
		deps:    deps,
		log:     deps.Log.WithComponent(deps.Log.GetComponent() + "." + handler.Contract().String()),
	}
}

func (p *eventProcessor[E, P]) Contract() itypes.Contract {
	return p.handler.Contract()
}

func (p *eventProcessor[E, P]) GetLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	return p.deps.Client.GetLogs(ctx, p.address, fromBlock, toBlock)
}

func (p *eventProcessor[E, P]) ProcessEvents(ctx context.Context, events []*store.RawEvent) (*BatchResult, error) {
	var (
		contract = p.Contract().String()
		result   = &BatchResult{}
		wrangled = make([]Wrangled[E], 0, len(events))
		ids      = make([]int64, 0, len(events))
	)

	for _, raw := range events {
		if raw.Processed {
			continue
		}
		ids = append(ids, raw.ID)

		parsed, err := ParseLog(p.abi, raw.Log)
		if err != nil {
			p.log.Warnf("raw event %d is invalid: %v", raw.ID, err)
			result.Invalid++
			continue
		}

		if _, ok := p.ignore[parsed.Name]; ok {
			p.log.Debugf("raw event %d (%s) ignored", raw.ID, parsed.Name)
			result.Ignored++
			continue
		}

		event, ok := p.handler.WrangleEvent(parsed)
		if !ok {
			p.log.Warnf("raw event %d (%s) could not be wrangled", raw.ID, parsed.Name)
			result.Invalid++
			continue
		}

		wrangled = append(wrangled, Wrangled[E]{Event: event, Raw: raw, Parsed: parsed})
	}

	if len(ids) == 0 {
		return result, nil
	}

	var prepared *Prepared[P]
	if len(wrangled) > 0 {
		var err error
		prepared, err = p.handler.PreparePayload(ctx, wrangled)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare %d %s events: %w", len(wrangled), contract, err)
		}

		for _, raw := range prepared.NotFound {
			p.log.Warnf("raw event %d dropped, its %s entity was not found on chain", raw.ID, contract)
		}
		result.NotFound = len(prepared.NotFound)
		result.Applied = len(wrangled) - result.NotFound
	}

	if err := p.submit(ctx, prepared, ids); err != nil {
		return nil, err
	}

	EventsInc(contract, OutcomeFound, result.Applied)
	EventsInc(contract, OutcomeNotFound, result.NotFound)
	EventsInc(contract, OutcomeIgnored, result.Ignored)
	EventsInc(contract, OutcomeInvalid, result.Invalid)

	if prepared != nil {
		result.Invalidations = p.invalidate(ctx, prepared.Invalidations)
	}

	return result, nil
}

func (p *eventProcessor[E, P]) submit(ctx context.Context, prepared *Prepared[P], ids []int64) error {
	tx, err := p.deps.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer db.Rollback(tx, func(err error) {
		p.log.Errorf("failed to rollback transaction: %v", err)
	})

	if prepared != nil {
		if err := p.handler.SubmitPayload(ctx, tx, prepared.Payload); err != nil {
			return fmt.Errorf("failed to submit %s payload: %w", p.Contract(), err)
		}
	}

	if err := p.deps.Events.MarkProcessed(ctx, tx, ids); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s batch: %w", p.Contract(), err)
	}

	return nil
}

// invalidate runs after commit and sends every job as is, duplicates included, since
// recomputation is idempotent. A failed enqueue cannot be retried through the event job
// because the events are processed, so it is logged and counted.
func (p *eventProcessor[E, P]) invalidate(ctx context.Context, jobs []score.RecomputeJob) int {
	sent := 0
	for _, job := range jobs {
		if err := p.deps.Invalidator.Invalidate(ctx, job.Target, job.TxHash); err != nil {
			p.log.Errorf("failed to invalidate score of %s: %v", job.Target, err)
			InvalidationErrorInc(p.Contract().String())
			continue
		}
		sent++
	}
	return sent
}
