package score

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
)

// Invalidator marks a score target as stale.
type Invalidator interface {
	Invalidate(ctx context.Context, target Target, txHash *common.Hash) error
}

var _ Invalidator = (*Trigger)(nil)

// Trigger enqueues one recompute job per invalidation.
type Trigger struct {
	broker queue.Broker
	log    *logger.Logger
}

func NewTrigger(broker queue.Broker, log *logger.Logger) *Trigger {
	return &Trigger{broker: broker, log: log}
}

// Invalidate enqueues a recompute job for target. Duplicate invalidations are expected.
func (t *Trigger) Invalidate(ctx context.Context, target Target, txHash *common.Hash) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid score target: %w", err)
	}

	id, err := t.broker.Enqueue(ctx, queue.ScoreRecompute, RecomputeJob{Target: target, TxHash: txHash})
	if err != nil {
		return fmt.Errorf("failed to enqueue recompute of %s: %w", target, err)
	}

	InvalidationInc(string(target.Kind))
	t.log.Debugf("enqueued recompute %s of %s", id, target)

	return nil
}
