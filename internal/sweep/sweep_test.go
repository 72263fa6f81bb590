package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	queuemocks "github.com/goran-ethernal/ReputationIndexor/internal/queue/mocks"
	istore "github.com/goran-ethernal/ReputationIndexor/internal/store"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	events  *istore.RawEventStore
	broker  *queuemocks.Broker
	sweeper *Sweeper
}

func newFixture(t *testing.T, batchSize int) *fixture {
	t.Helper()

	events := istore.NewRawEventStore(testutil.NewMigratedDB(t), logger.NewNopLogger())
	broker := queuemocks.NewBroker(t)

	cfg := config.SweepConfig{BatchSize: batchSize}
	cfg.ApplyDefaults()

	return &fixture{
		events:  events,
		broker:  broker,
		sweeper: New(cfg, []itypes.Contract{itypes.ContractReview}, events, broker, logger.NewNopLogger()),
	}
}

// store creates raw events at block n for n in blocks and returns their ids in insertion order.
func (f *fixture) store(t *testing.T, blocks ...uint64) []int64 {
	t.Helper()
	ctx := context.Background()

	for _, n := range blocks {
		created, err := f.events.TryCreate(ctx, itypes.ContractReview, testutil.Log(n, 0, testutil.Hash(n)))
		require.NoError(t, err)
		require.True(t, created)
	}

	all, err := f.events.List(ctx, store.ListFilter{})
	require.NoError(t, err)

	ids := make([]int64, len(all))
	for i, raw := range all {
		ids[i] = raw.ID
	}
	return ids
}

// expectEnqueue records the raw event ids of every enqueued job.
func (f *fixture) expectEnqueue(got *[]int64) {
	f.broker.EXPECT().Enqueue(mock.Anything, queue.EventProcessing, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, payload any) (string, error) {
			*got = append(*got, payload.(queue.EventJob).RawEventID)
			return "id", nil
		})
}

func pending(t *testing.T, f *fixture) int {
	t.Helper()
	raws, err := f.events.ListPendingJobs(context.Background(), 100)
	require.NoError(t, err)
	return len(raws)
}

func TestSweeper_Run(t *testing.T) {
	f := newFixture(t, 2)
	// stored out of order, enqueued by position
	ids := f.store(t, 30, 10, 20, 40, 50)

	var got []int64
	f.expectEnqueue(&got)

	result, err := f.sweeper.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, &Result{Enqueued: 5, Batches: 3}, result)
	require.Equal(t, []int64{ids[1], ids[2], ids[0], ids[3], ids[4]}, got)
	require.Zero(t, pending(t, f))

	// nothing left
	result, err = f.sweeper.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, &Result{}, result)
}

func TestSweeper_Run_EnqueueFailureMarksOnlyEnqueued(t *testing.T) {
	f := newFixture(t, 10)
	ids := f.store(t, 1, 2, 3)

	f.broker.EXPECT().Enqueue(mock.Anything, queue.EventProcessing, queue.EventJob{RawEventID: ids[0]}).
		Return("a", nil).Once()
	f.broker.EXPECT().Enqueue(mock.Anything, queue.EventProcessing, queue.EventJob{RawEventID: ids[1]}).
		Return("", errors.New("broker down")).Once()

	result, err := f.sweeper.Run(context.Background())
	require.ErrorContains(t, err, "broker down")
	require.Equal(t, 1, result.Enqueued)

	raw, err := f.events.Get(context.Background(), ids[0])
	require.NoError(t, err)
	require.True(t, raw.JobCreated)
	require.Equal(t, 2, pending(t, f))
}

func TestSweeper_RequeueUnprocessed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)
	ids := f.store(t, 1, 2)

	var got []int64
	f.expectEnqueue(&got)
	f.broker.EXPECT().Depth(mock.Anything, queue.EventProcessing).Return(int64(0), nil)

	_, err := f.sweeper.Run(ctx)
	require.NoError(t, err)
	got = nil

	result, err := f.sweeper.RequeueUnprocessed(ctx)
	require.NoError(t, err)
	require.Zero(t, result.Enqueued, "fresh jobs are not stale")

	f.sweeper.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	result, err = f.sweeper.RequeueUnprocessed(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, result.Enqueued)
	require.Equal(t, ids, got)
}

func TestSweeper_RequeueUnprocessed_SkipsWhileJobsQueued(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)
	ids := f.store(t, 1)
	require.NoError(t, f.events.MarkJobCreated(ctx, ids))

	f.broker.EXPECT().Depth(mock.Anything, queue.EventProcessing).Return(int64(3), nil).Once()
	f.sweeper.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	result, err := f.sweeper.RequeueUnprocessed(ctx)
	require.NoError(t, err)
	require.Zero(t, result.Enqueued)

	f.broker.EXPECT().Depth(mock.Anything, queue.EventProcessing).Return(int64(0), errors.New("broker down")).Once()
	_, err = f.sweeper.RequeueUnprocessed(ctx)
	require.ErrorContains(t, err, "broker down")
}

func TestSweeper_RequeueUnprocessed_SkipsDeadLetteredAndUnregistered(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)
	ids := f.store(t, 1, 2)

	created, err := f.events.TryCreate(ctx, itypes.ContractMarket, testutil.Log(3, 0, testutil.Hash(3)))
	require.NoError(t, err)
	require.True(t, created)

	all, err := f.events.List(ctx, store.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	require.NoError(t, f.events.MarkJobCreated(ctx, []int64{ids[0], ids[1], all[2].ID}))
	require.NoError(t, f.events.MarkDeadLettered(ctx, []int64{ids[0]}))

	var got []int64
	f.expectEnqueue(&got)
	f.broker.EXPECT().Depth(mock.Anything, queue.EventProcessing).Return(int64(0), nil).Once()
	f.sweeper.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	result, err := f.sweeper.RequeueUnprocessed(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, result.Enqueued)
	require.Equal(t, []int64{ids[1]}, got, "only the lost job of a registered contract is requeued")
}

func TestSweeper_CancelledContext(t *testing.T) {
	f := newFixture(t, 10)
	f.store(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.sweeper.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, pending(t, f))
}
