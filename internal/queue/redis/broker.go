// Package redis implements queue.Broker on asynq.
//
// asynq has no queue declaration, so options live in the broker: every process declares
// the topology on startup. Each Consume runs its own asynq server with a concurrency of one.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	iqueue "github.com/goran-ethernal/ReputationIndexor/internal/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/hibiken/asynq"
)

var _ queue.Broker = (*Broker)(nil)

// enqueuer is the part of asynq.Client used to publish tasks.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Broker is a queue.Broker backed by redis.
type Broker struct {
	redis     asynq.RedisClientOpt
	cfg       config.QueueConfig
	log       *logger.Logger
	client    *asynq.Client
	inspector *asynq.Inspector
	publisher enqueuer

	mu     sync.RWMutex
	queues map[string]queue.Options

	closed atomic.Bool
}

// NewBroker connects to the redis of cfg.Redis.
func NewBroker(cfg config.QueueConfig, log *logger.Logger) (*Broker, error) {
	if cfg.Redis == nil {
		return nil, errors.New("redis queue driver requires queue.redis")
	}

	opt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	client := asynq.NewClient(opt)
	if err := client.Ping(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	return &Broker{
		redis:     opt,
		cfg:       cfg,
		log:       log,
		client:    client,
		inspector: asynq.NewInspector(opt),
		publisher: client,
		queues:    make(map[string]queue.Options),
	}, nil
}

// DeclareQueue records the options. A non-durable queue is deleted with its tasks.
func (b *Broker) DeclareQueue(_ context.Context, name string, opts queue.Options) error {
	if b.closed.Load() {
		return queue.ErrClosed
	}

	if !opts.Durable {
		if err := b.inspector.DeleteQueue(name, true); err != nil && !errors.Is(err, asynq.ErrQueueNotFound) {
			return fmt.Errorf("failed to purge queue %s: %w", name, err)
		}
	}

	b.mu.Lock()
	b.queues[name] = opts
	b.mu.Unlock()

	return nil
}

// Enqueue publishes payload as a task named after the queue.
func (b *Broker) Enqueue(ctx context.Context, name string, payload any) (string, error) {
	if b.closed.Load() {
		return "", queue.ErrClosed
	}
	opts, err := b.options(name)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode message for %s: %w", name, err)
	}

	return b.publish(ctx, name, opts, data)
}

// Consume serves the queue until ctx is cancelled, then waits for the in-flight task.
func (b *Broker) Consume(ctx context.Context, name string, handler queue.Handler) error {
	if b.closed.Load() {
		return queue.ErrClosed
	}
	opts, err := b.options(name)
	if err != nil {
		return err
	}

	retryDelay := b.cfg.RetryDelay.Duration
	srv := asynq.NewServer(b.redis, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{name: 1},
		RetryDelayFunc: func(int, error, *asynq.Task) time.Duration {
			return retryDelay
		},
		ShutdownTimeout: b.cfg.ShutdownTimeout.Duration,
		Logger:          b.log,
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			b.log.Debugf("task of %s failed: %v", task.Type(), err)
		}),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(name, func(taskCtx context.Context, task *asynq.Task) error {
		id, _ := asynq.GetTaskID(taskCtx)
		retried, _ := asynq.GetRetryCount(taskCtx)
		maxRetry, _ := asynq.GetMaxRetry(taskCtx)

		msg := &queue.Message{
			ID:            id,
			Queue:         name,
			Payload:       task.Payload(),
			DeliveryCount: retried + 1,
			DeliveryLimit: opts.DeliveryLimit,
		}
		return b.deliver(context.WithoutCancel(taskCtx), msg, opts, handler, retried >= maxRetry)
	})

	if err := srv.Start(mux); err != nil {
		return fmt.Errorf("failed to start consumer of %s: %w", name, err)
	}
	b.log.Infof("consuming queue %s", name)

	<-ctx.Done()
	srv.Shutdown()

	return nil
}

// Depth counts the pending, scheduled, retrying and active tasks of the queue.
func (b *Broker) Depth(_ context.Context, name string) (int64, error) {
	if _, err := b.options(name); err != nil {
		return 0, err
	}

	info, err := b.inspector.GetQueueInfo(name)
	if errors.Is(err, asynq.ErrQueueNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to inspect queue %s: %w", name, err)
	}

	return int64(info.Pending + info.Scheduled + info.Retry + info.Active), nil
}

func (b *Broker) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	return errors.Join(b.inspector.Close(), b.client.Close())
}

// deliver runs handler and decides the fate of a failed delivery. final reports that asynq
// will not retry the task again.
func (b *Broker) deliver(ctx context.Context, msg *queue.Message, opts queue.Options,
	handler queue.Handler, final bool) error {
	start := time.Now()
	err := handler(ctx, msg)
	iqueue.HandleDurationLog(msg.Queue, time.Since(start))

	if err == nil {
		iqueue.MessagesInc(msg.Queue, iqueue.ResultAcked)
		return nil
	}

	poison := errors.Is(err, queue.ErrPoison)
	if !poison && (opts.DeliveryLimit == queue.Unlimited || !final) {
		b.log.Infof("message %s on %s failed delivery %d, retrying: %v", msg.ID, msg.Queue, msg.DeliveryCount, err)
		iqueue.MessagesInc(msg.Queue, iqueue.ResultRequeued)
		return err
	}

	if opts.DeadLetterTo == "" {
		b.log.Warnf("archiving message %s of %s, no dead-letter queue: %v", msg.ID, msg.Queue, err)
		iqueue.MessagesInc(msg.Queue, iqueue.ResultDropped)
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	dlq, dlqErr := b.options(opts.DeadLetterTo)
	if dlqErr != nil {
		return fmt.Errorf("failed to dead-letter message %s: %w", msg.ID, dlqErr)
	}
	if _, pubErr := b.publish(ctx, opts.DeadLetterTo, dlq, msg.Payload); pubErr != nil {
		// returning the error keeps the task, asynq retries or archives it
		return fmt.Errorf("failed to dead-letter message %s: %w", msg.ID, pubErr)
	}

	b.log.Warnf("message %s of %s moved to %s after %d deliveries: %v",
		msg.ID, msg.Queue, opts.DeadLetterTo, msg.DeliveryCount, err)
	iqueue.MessagesInc(msg.Queue, iqueue.ResultDeadLettered)

	return nil
}

func (b *Broker) publish(ctx context.Context, name string, opts queue.Options, data []byte) (string, error) {
	id := uuid.NewString()
	task := asynq.NewTask(name, data)

	if _, err := b.publisher.EnqueueContext(ctx, task,
		asynq.Queue(name),
		asynq.TaskID(id),
		asynq.MaxRetry(MaxRetry(opts.DeliveryLimit)),
	); err != nil {
		return "", fmt.Errorf("failed to enqueue message on %s: %w", name, err)
	}

	iqueue.MessagesInc(name, iqueue.ResultEnqueued)
	return id, nil
}

func (b *Broker) options(name string) (queue.Options, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	opts, ok := b.queues[name]
	if !ok {
		return queue.Options{}, fmt.Errorf("%w: %s", queue.ErrUnknownQueue, name)
	}
	return opts, nil
}

// MaxRetry converts a delivery limit into asynq retries.
func MaxRetry(deliveryLimit int) int {
	if deliveryLimit == queue.Unlimited {
		return math.MaxInt32
	}
	return deliveryLimit - 1
}
