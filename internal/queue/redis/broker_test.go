package redis

import (
	"context"
	"errors"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

type published struct {
	queue   string
	payload []byte
}

type fakePublisher struct {
	mu    sync.Mutex
	tasks []published
	err   error
}

func (f *fakePublisher) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, published{queue: task.Type(), payload: task.Payload()})
	return &asynq.TaskInfo{}, nil
}

func newTestBroker(publisher enqueuer) *Broker {
	return &Broker{
		log:       logger.NewNopLogger(),
		publisher: publisher,
		queues: map[string]queue.Options{
			queue.EventProcessing: {Durable: true, DeliveryLimit: 5, DeadLetterTo: queue.DeadLetter},
			queue.DeadLetter:      {Durable: true},
			queue.ScoreRecompute:  {Durable: true, DeliveryLimit: queue.Unlimited},
			"no-dlq":              {Durable: true, DeliveryLimit: 3},
		},
	}
}

func TestMaxRetry(t *testing.T) {
	require.Equal(t, 4, MaxRetry(5))
	require.Equal(t, 0, MaxRetry(1))
	require.Equal(t, math.MaxInt32, MaxRetry(queue.Unlimited))
}

func TestBroker_Enqueue(t *testing.T) {
	publisher := &fakePublisher{}
	b := newTestBroker(publisher)

	id, err := b.Enqueue(context.Background(), queue.EventProcessing, queue.EventJob{RawEventID: 3})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, []published{{queue: queue.EventProcessing, payload: []byte(`{"rawEventId":3}`)}}, publisher.tasks)

	_, err = b.Enqueue(context.Background(), "missing", queue.EventJob{})
	require.ErrorIs(t, err, queue.ErrUnknownQueue)

	publisher.err = errors.New("redis down")
	_, err = b.Enqueue(context.Background(), queue.EventProcessing, queue.EventJob{})
	require.ErrorContains(t, err, "redis down")
}

func TestBroker_Deliver(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		queue      string
		handlerErr error
		final      bool
		wantErr    error
		wantSkip   bool
		wantDLQ    bool
	}{
		{name: "ack", queue: queue.EventProcessing},
		{name: "retry before the limit", queue: queue.EventProcessing, handlerErr: boom, wantErr: boom},
		{name: "final failure is dead-lettered", queue: queue.EventProcessing, handlerErr: boom, final: true, wantDLQ: true},
		{name: "poison is dead-lettered at once", queue: queue.EventProcessing, handlerErr: queue.ErrPoison, wantDLQ: true},
		{name: "unlimited keeps retrying", queue: queue.ScoreRecompute, handlerErr: boom, final: true, wantErr: boom},
		{name: "final failure without dlq is archived", queue: "no-dlq", handlerErr: boom, final: true,
			wantErr: boom, wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &fakePublisher{}
			b := newTestBroker(publisher)

			msg := &queue.Message{ID: "m1", Queue: tt.queue, Payload: []byte(`{"rawEventId":1}`), DeliveryCount: 1}
			opts, err := b.options(tt.queue)
			require.NoError(t, err)

			err = b.deliver(context.Background(), msg, opts, func(context.Context, *queue.Message) error {
				return tt.handlerErr
			}, tt.final)

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantSkip {
				require.ErrorIs(t, err, asynq.SkipRetry)
			} else if err != nil {
				require.NotErrorIs(t, err, asynq.SkipRetry)
			}

			if tt.wantDLQ {
				require.Equal(t, []published{{queue: queue.DeadLetter, payload: msg.Payload}}, publisher.tasks)
			} else {
				require.Empty(t, publisher.tasks)
			}
		})
	}
}

func TestBroker_DeliverKeepsTaskWhenDeadLetterFails(t *testing.T) {
	b := newTestBroker(&fakePublisher{err: errors.New("redis down")})
	opts, err := b.options(queue.EventProcessing)
	require.NoError(t, err)

	err = b.deliver(context.Background(), &queue.Message{ID: "m1", Queue: queue.EventProcessing}, opts,
		func(context.Context, *queue.Message) error { return queue.ErrPoison }, false)
	require.ErrorContains(t, err, "failed to dead-letter message m1")
}

// TestBroker_Redis runs against a real server when REDIS_ADDR is set.
func TestBroker_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	cfg := config.QueueConfig{
		Driver:          config.QueueDriverRedis,
		Redis:           &config.RedisConfig{Addr: addr},
		RetryDelay:      common.NewDuration(10 * time.Millisecond),
		ShutdownTimeout: common.NewDuration(time.Second),
	}
	cfg.ApplyDefaults()

	b, err := NewBroker(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	ctx := context.Background()
	name := "test-" + time.Now().Format("150405.000000")
	dlq := name + "-dlq"
	require.NoError(t, b.DeclareQueue(ctx, dlq, queue.Options{Durable: false}))
	require.NoError(t, b.DeclareQueue(ctx, name, queue.Options{Durable: false, DeliveryLimit: 2, DeadLetterTo: dlq}))

	_, err = b.Enqueue(ctx, name, queue.EventJob{RawEventID: 1})
	require.NoError(t, err)

	var attempts atomic.Int32
	consumeCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- b.Consume(consumeCtx, name, func(context.Context, *queue.Message) error {
			attempts.Add(1)
			return errors.New("boom")
		})
	}()

	require.Eventually(t, func() bool {
		n, err := b.Depth(ctx, dlq)
		return err == nil && n == 1
	}, 30*time.Second, 50*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	require.Equal(t, int32(2), attempts.Load())
}
