package score

import (
	"context"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
)

// Consumer drains the score-recompute queue into an Engine.
type Consumer struct {
	broker queue.Broker
	engine Engine
	log    *logger.Logger
}

func NewConsumer(broker queue.Broker, engine Engine, log *logger.Logger) *Consumer {
	return &Consumer{broker: broker, engine: engine, log: log}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("consuming score recompute jobs")
	return c.broker.Consume(ctx, queue.ScoreRecompute, queue.JSONHandler(c.Handle))
}

// Handle recomputes one target. Failures are returned so the job is requeued.
func (c *Consumer) Handle(ctx context.Context, job RecomputeJob) error {
	start := time.Now()

	if err := c.engine.Recompute(ctx, job.Target, job.TxHash); err != nil {
		RecomputeInc("failed")
		c.log.Errorf("recompute of %s failed, will retry: %v", job.Target, err)
		return err
	}

	RecomputeInc("ok")
	RecomputeDurationLog(time.Since(start))

	return nil
}
