package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// EventHandler processes one raw event by id.
type EventHandler interface {
	ProcessEvent(ctx context.Context, rawEventID int64) (*Outcome, error)
}

var _ EventHandler = (*Service)(nil)

// Consumer feeds the event-processing queue into an EventHandler.
type Consumer struct {
	broker  queue.Broker
	handler EventHandler
	events  store.RawEventStore
	log     *logger.Logger
}

func NewConsumer(broker queue.Broker, handler EventHandler, events store.RawEventStore, log *logger.Logger) *Consumer {
	return &Consumer{broker: broker, handler: handler, events: events, log: log}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("consuming event processing jobs")
	return c.broker.Consume(ctx, queue.EventProcessing, c.HandleMessage)
}

// HandleMessage decodes the job and handles it. Before the final delivery runs, the raw event
// is flagged as dead-lettered so that the periodic requeue leaves it in the dead-letter queue
// whether the delivery fails or never completes. A successful delivery clears the flag.
func (c *Consumer) HandleMessage(ctx context.Context, msg *queue.Message) error {
	var job queue.EventJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		return fmt.Errorf("%w: message %s on %s: %w", queue.ErrPoison, msg.ID, msg.Queue, err)
	}

	if msg.FinalDelivery() {
		if err := c.events.MarkDeadLettered(ctx, []int64{job.RawEventID}); err != nil {
			c.log.Errorf("failed to flag raw event %d as dead-lettered: %v", job.RawEventID, err)
		}
	}

	return c.Handle(ctx, job)
}

// Handle processes one job. Jobs for unknown raw events are poison.
func (c *Consumer) Handle(ctx context.Context, job queue.EventJob) error {
	outcome, err := c.handler.ProcessEvent(ctx, job.RawEventID)
	if err != nil {
		if errors.Is(err, ErrRawEventNotFound) {
			return fmt.Errorf("%w: %w", queue.ErrPoison, err)
		}
		return err
	}

	c.log.Debugf("raw event %d: %s", job.RawEventID, outcome.Status)
	return nil
}
