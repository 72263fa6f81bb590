// Package sqlite implements queue.Broker on the indexor database.
//
// Messages live in the jobs table. A consumer claims the oldest available message with a
// single UPDATE ... RETURNING, which takes a visibility lease kept alive by a heartbeat
// while the handler runs. A message whose lease expired is claimed again by any consumer.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	iqueue "github.com/goran-ethernal/ReputationIndexor/internal/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
)

const (
	statusReady  = "ready"
	statusLeased = "leased"
)

var _ queue.Broker = (*Broker)(nil)

// Broker is a durable queue backed by SQLite.
type Broker struct {
	db         *sql.DB
	cfg        config.QueueConfig
	log        *logger.Logger
	consumerID string
	now        func() time.Time

	mu     sync.RWMutex
	queues map[string]queue.Options

	closeMu  sync.Mutex
	closed   atomic.Bool
	inFlight sync.WaitGroup
}

// NewBroker creates a broker on an already migrated database.
func NewBroker(sqlDB *sql.DB, cfg config.QueueConfig, log *logger.Logger) *Broker {
	return &Broker{
		db:         sqlDB,
		cfg:        cfg,
		log:        log,
		consumerID: uuid.NewString(),
		now:        time.Now,
		queues:     make(map[string]queue.Options),
	}
}

// DeclareQueue stores the queue options. Messages of a non-durable queue are purged.
func (b *Broker) DeclareQueue(ctx context.Context, name string, opts queue.Options) error {
	if b.closed.Load() {
		return queue.ErrClosed
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer db.Rollback(tx, func(err error) {
		b.log.Errorf("failed to rollback queue declaration: %v", err)
	})

	const upsertQuery = `
		INSERT INTO queues (name, durable, delivery_limit, single_active_consumer, dead_letter_to)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			durable = excluded.durable,
			delivery_limit = excluded.delivery_limit,
			single_active_consumer = excluded.single_active_consumer,
			dead_letter_to = excluded.dead_letter_to
	`
	if _, err := tx.ExecContext(ctx, upsertQuery,
		name, opts.Durable, opts.DeliveryLimit, opts.SingleActiveConsumer, opts.DeadLetterTo); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}

	if !opts.Durable {
		res, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE queue_name = ?`, name)
		if err != nil {
			return fmt.Errorf("failed to purge queue %s: %w", name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			b.log.Infof("purged %d messages of non-durable queue %s", n, name)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit queue declaration: %w", err)
	}

	b.mu.Lock()
	b.queues[name] = opts
	b.mu.Unlock()

	b.log.Debugf("declared queue %s (%+v)", name, opts)
	return nil
}

// Enqueue appends payload to the queue.
func (b *Broker) Enqueue(ctx context.Context, name string, payload any) (string, error) {
	if b.closed.Load() {
		return "", queue.ErrClosed
	}
	if _, err := b.options(ctx, name); err != nil {
		return "", err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode message for %s: %w", name, err)
	}

	id := uuid.NewString()
	now := b.now().UnixMilli()

	const insertQuery = `
		INSERT INTO jobs (id, queue_name, payload, status, available_at, enqueued_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := b.db.ExecContext(ctx, insertQuery, id, name, data, statusReady, now, now); err != nil {
		return "", fmt.Errorf("failed to enqueue message on %s: %w", name, err)
	}

	iqueue.MessagesInc(name, iqueue.ResultEnqueued)
	return id, nil
}

// Consume claims one message at a time until ctx is cancelled. It returns nil on cancellation.
func (b *Broker) Consume(ctx context.Context, name string, handler queue.Handler) error {
	if b.closed.Load() {
		return queue.ErrClosed
	}
	opts, err := b.options(ctx, name)
	if err != nil {
		return err
	}

	b.log.Infof("consuming queue %s as %s", name, b.consumerID)
	defer b.releaseQueue(name)

	for {
		if ctx.Err() != nil || b.closed.Load() {
			return nil
		}

		handled, err := b.consumeOne(ctx, name, opts, handler)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, queue.ErrClosed) {
				return nil
			}
			b.log.Errorf("failed to consume queue %s: %v", name, err)
		}
		if handled {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(b.cfg.PollInterval.Duration):
		}
	}
}

// Depth counts the ready and leased messages of the queue.
func (b *Broker) Depth(ctx context.Context, name string) (int64, error) {
	if _, err := b.options(ctx, name); err != nil {
		return 0, err
	}

	var depth int64
	if err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM jobs WHERE queue_name = ?`, name).Scan(&depth); err != nil {
		return 0, fmt.Errorf("failed to count messages of %s: %w", name, err)
	}

	return depth, nil
}

// Close waits for in-flight handlers. The database is owned by the caller and stays open.
func (b *Broker) Close() error {
	b.closeMu.Lock()
	alreadyClosed := b.closed.Swap(true)
	b.closeMu.Unlock()

	if !alreadyClosed {
		b.inFlight.Wait()
	}
	return nil
}

// track registers an in-flight delivery unless the broker is closed.
func (b *Broker) track() bool {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if b.closed.Load() {
		return false
	}
	b.inFlight.Add(1)
	return true
}

func (b *Broker) consumeOne(ctx context.Context, name string, opts queue.Options, handler queue.Handler) (bool, error) {
	if opts.SingleActiveConsumer {
		active, err := b.acquireQueue(ctx, name)
		if err != nil || !active {
			return false, err
		}
	}

	if !b.track() {
		return false, queue.ErrClosed
	}
	defer b.inFlight.Done()

	msg, err := b.claim(ctx, name)
	if err != nil || msg == nil {
		return false, err
	}
	msg.DeliveryLimit = opts.DeliveryLimit

	// A delivery past the limit means an earlier consumer lost its lease on the last attempt.
	if opts.DeliveryLimit != queue.Unlimited && msg.DeliveryCount > opts.DeliveryLimit {
		return true, b.deadLetter(ctx, msg, opts, errors.New("lease expired on final delivery"))
	}

	// The handler runs to completion even when ctx is cancelled meanwhile.
	handlerCtx := context.WithoutCancel(ctx)
	stop := b.heartbeat(handlerCtx, msg, opts.SingleActiveConsumer)

	start := b.now()
	handleErr := handler(handlerCtx, msg)
	stop()
	iqueue.HandleDurationLog(name, b.now().Sub(start))

	switch {
	case handleErr == nil:
		return true, b.ack(handlerCtx, msg)
	case errors.Is(handleErr, queue.ErrPoison):
		b.log.Warnf("message %s on %s is poison: %v", msg.ID, name, handleErr)
		return true, b.deadLetter(handlerCtx, msg, opts, handleErr)
	case opts.DeliveryLimit != queue.Unlimited && msg.DeliveryCount >= opts.DeliveryLimit:
		b.log.Warnf("message %s on %s failed delivery %d of %d: %v",
			msg.ID, name, msg.DeliveryCount, opts.DeliveryLimit, handleErr)
		return true, b.deadLetter(handlerCtx, msg, opts, handleErr)
	default:
		b.log.Infof("message %s on %s failed delivery %d, requeued: %v", msg.ID, name, msg.DeliveryCount, handleErr)
		return true, b.nack(handlerCtx, msg, handleErr)
	}
}

// claim leases the oldest available message of the queue, or returns nil when there is none.
func (b *Broker) claim(ctx context.Context, name string) (*queue.Message, error) {
	now := b.now().UnixMilli()
	leaseUntil := now + b.cfg.LeaseTTL.Milliseconds()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer db.Rollback(tx, func(err error) {
		b.log.Errorf("failed to rollback claim: %v", err)
	})

	const claimQuery = `
		UPDATE jobs
		SET status = ?, delivery_count = delivery_count + 1, lease_until = ?, leased_by = ?
		WHERE seq = (
			SELECT seq FROM jobs
			WHERE queue_name = ?
			  AND ((status = ? AND available_at <= ?) OR (status = ? AND lease_until < ?))
			ORDER BY seq ASC
			LIMIT 1
		)
		RETURNING id, payload, delivery_count
	`

	msg := &queue.Message{Queue: name}
	err = tx.QueryRowContext(ctx, claimQuery,
		statusLeased, leaseUntil, b.consumerID,
		name, statusReady, now, statusLeased, now,
	).Scan(&msg.ID, &msg.Payload, &msg.DeliveryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim message of %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	if msg.DeliveryCount > 1 {
		iqueue.MessagesInc(name, iqueue.ResultRedelivered)
	}
	return msg, nil
}

func (b *Broker) ack(ctx context.Context, msg *queue.Message) error {
	if _, err := b.db.ExecContext(ctx,
		`DELETE FROM jobs WHERE id = ? AND leased_by = ?`, msg.ID, b.consumerID); err != nil {
		return fmt.Errorf("failed to acknowledge message %s: %w", msg.ID, err)
	}

	iqueue.MessagesInc(msg.Queue, iqueue.ResultAcked)
	return nil
}

func (b *Broker) nack(ctx context.Context, msg *queue.Message, cause error) error {
	const nackQuery = `
		UPDATE jobs
		SET status = ?, available_at = ?, lease_until = 0, leased_by = '', last_error = ?
		WHERE id = ? AND leased_by = ?
	`

	availableAt := b.now().Add(b.cfg.RetryDelay.Duration).UnixMilli()
	if _, err := b.db.ExecContext(ctx, nackQuery,
		statusReady, availableAt, cause.Error(), msg.ID, b.consumerID); err != nil {
		return fmt.Errorf("failed to requeue message %s: %w", msg.ID, err)
	}

	iqueue.MessagesInc(msg.Queue, iqueue.ResultRequeued)
	return nil
}

// deadLetter moves the message to the dead-letter queue of opts, or drops it when there is none.
func (b *Broker) deadLetter(ctx context.Context, msg *queue.Message, opts queue.Options, cause error) error {
	if opts.DeadLetterTo == "" {
		b.log.Warnf("dropping message %s of %s, no dead-letter queue: %v", msg.ID, msg.Queue, cause)
		if _, err := b.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, msg.ID); err != nil {
			return fmt.Errorf("failed to drop message %s: %w", msg.ID, err)
		}
		iqueue.MessagesInc(msg.Queue, iqueue.ResultDropped)
		return nil
	}

	const moveQuery = `
		UPDATE jobs
		SET queue_name = ?, status = ?, delivery_count = 0, available_at = ?, lease_until = 0,
		    leased_by = '', last_error = ?, dead_lettered_from = ?
		WHERE id = ?
	`

	if _, err := b.db.ExecContext(ctx, moveQuery,
		opts.DeadLetterTo, statusReady, b.now().UnixMilli(), cause.Error(), msg.Queue, msg.ID); err != nil {
		return fmt.Errorf("failed to dead-letter message %s: %w", msg.ID, err)
	}

	b.log.Warnf("message %s of %s moved to %s after %d deliveries", msg.ID, msg.Queue, opts.DeadLetterTo, msg.DeliveryCount)
	iqueue.MessagesInc(msg.Queue, iqueue.ResultDeadLettered)
	return nil
}

// heartbeat extends the message lease, and the queue lease when held, until stop is called.
func (b *Broker) heartbeat(ctx context.Context, msg *queue.Message, queueLease bool) (stop func()) {
	var (
		done     = make(chan struct{})
		wg       sync.WaitGroup
		interval = b.cfg.LeaseTTL.Duration / 3 //nolint:mnd
	)
	if interval <= 0 {
		interval = time.Second
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				leaseUntil := b.now().Add(b.cfg.LeaseTTL.Duration).UnixMilli()
				if _, err := b.db.ExecContext(ctx,
					`UPDATE jobs SET lease_until = ? WHERE id = ? AND leased_by = ?`,
					leaseUntil, msg.ID, b.consumerID); err != nil {
					b.log.Errorf("failed to extend lease of message %s: %v", msg.ID, err)
				}
				if queueLease {
					if _, err := b.acquireQueue(ctx, msg.Queue); err != nil {
						b.log.Errorf("failed to extend lease of queue %s: %v", msg.Queue, err)
					}
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

// acquireQueue takes or renews the single active consumer lease of the queue.
func (b *Broker) acquireQueue(ctx context.Context, name string) (bool, error) {
	now := b.now().UnixMilli()

	const leaseQuery = `
		UPDATE queues
		SET consumer_id = ?, consumer_lease_until = ?
		WHERE name = ? AND (consumer_id = '' OR consumer_id = ? OR consumer_lease_until < ?)
	`

	res, err := b.db.ExecContext(ctx, leaseQuery,
		b.consumerID, now+b.cfg.LeaseTTL.Milliseconds(), name, b.consumerID, now)
	if err != nil {
		return false, fmt.Errorf("failed to lease queue %s: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to lease queue %s: %w", name, err)
	}

	return n == 1, nil
}

func (b *Broker) releaseQueue(name string) {
	if _, err := b.db.Exec(
		`UPDATE queues SET consumer_id = '', consumer_lease_until = 0 WHERE name = ? AND consumer_id = ?`,
		name, b.consumerID); err != nil {
		b.log.Errorf("failed to release queue %s: %v", name, err)
	}
}

// options returns the declared options of the queue. Queues declared by another process are
// loaded from the database.
func (b *Broker) options(ctx context.Context, name string) (queue.Options, error) {
	b.mu.RLock()
	opts, ok := b.queues[name]
	b.mu.RUnlock()
	if ok {
		return opts, nil
	}

	const selectQuery = `
		SELECT durable, delivery_limit, single_active_consumer, dead_letter_to
		FROM queues WHERE name = ?
	`
	err := b.db.QueryRowContext(ctx, selectQuery, name).
		Scan(&opts.Durable, &opts.DeliveryLimit, &opts.SingleActiveConsumer, &opts.DeadLetterTo)
	if errors.Is(err, sql.ErrNoRows) {
		return queue.Options{}, fmt.Errorf("%w: %s", queue.ErrUnknownQueue, name)
	}
	if err != nil {
		return queue.Options{}, fmt.Errorf("failed to load queue %s: %w", name, err)
	}

	b.mu.Lock()
	b.queues[name] = opts
	b.mu.Unlock()

	return opts, nil
}
