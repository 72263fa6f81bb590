// Package queue defines the durable job queue used between ingestion, processing and score recomputation.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
)

// Queue names.
const (
	EventProcessing = "event-processing"
	DeadLetter      = "dead-letter"
	ScoreRecompute  = "score-recompute"
	PeriodicJobs    = "periodic-jobs"
)

// Unlimited disables the delivery limit of a queue.
const Unlimited = 0

var (
	// ErrPoison marks a message that can never be handled. It is dead-lettered without further deliveries.
	ErrPoison = errors.New("queue: poison message")

	// ErrUnknownQueue is returned when using a queue that was not declared.
	ErrUnknownQueue = errors.New("queue: unknown queue")

	// ErrClosed is returned by a broker after Close.
	ErrClosed = errors.New("queue: broker closed")
)

// Options configures a queue on declaration.
type Options struct {
	// Durable queues keep their messages across restarts.
	Durable bool
	// DeliveryLimit is the number of deliveries after which a failing message is dead-lettered. Unlimited when 0.
	DeliveryLimit int
	// SingleActiveConsumer allows only one consumer to receive messages at a time.
	SingleActiveConsumer bool
	// DeadLetterTo is the queue failed messages are moved to. Empty drops them.
	DeadLetterTo string
}

// Message is one delivery of an enqueued job.
type Message struct {
	ID            string
	Queue         string
	Payload       []byte
	DeliveryCount int
	// DeliveryLimit is the delivery limit of the queue, Unlimited when 0.
	DeliveryLimit int
}

// FinalDelivery reports that a failure of this delivery dead-letters the message.
func (m *Message) FinalDelivery() bool {
	return m.DeliveryLimit != Unlimited && m.DeliveryCount >= m.DeliveryLimit
}

// Handler handles one message. A nil error acknowledges it, any other error requeues it
// until the delivery limit is reached. Errors wrapping ErrPoison dead-letter it immediately.
type Handler func(ctx context.Context, msg *Message) error

// Broker is a durable queue client.
type Broker interface {
	// DeclareQueue creates the queue, or updates its options when it already exists.
	DeclareQueue(ctx context.Context, name string, opts Options) error

	// Enqueue JSON encodes payload and appends it to the queue. It returns the message id.
	Enqueue(ctx context.Context, name string, payload any) (string, error)

	// Consume delivers messages of the queue to handler one at a time until ctx is cancelled.
	// The in-flight handler runs to completion on a context that is not cancelled with ctx.
	Consume(ctx context.Context, name string, handler Handler) error

	// Depth returns the number of messages waiting or in flight on the queue.
	Depth(ctx context.Context, name string) (int64, error)

	// Close releases the broker resources.
	Close() error
}

// EventJob asks to process one raw event.
type EventJob struct {
	RawEventID int64 `json:"rawEventId"`
}

// PeriodicJob is a scheduled maintenance job dispatched by Type.
type PeriodicJob struct {
	Type        itypes.JobType `json:"type"`
	ScheduledAt time.Time      `json:"scheduledAt"`
}

// JSONHandler adapts a typed handler. Payloads that do not decode into T are poison.
func JSONHandler[T any](fn func(ctx context.Context, payload T) error) Handler {
	return func(ctx context.Context, msg *Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("%w: message %s on %s: %w", ErrPoison, msg.ID, msg.Queue, err)
		}

		return fn(ctx, payload)
	}
}
