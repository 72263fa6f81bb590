package score_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	icommon "github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	queuemocks "github.com/goran-ethernal/ReputationIndexor/internal/queue/mocks"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	scoremocks "github.com/goran-ethernal/ReputationIndexor/internal/score/mocks"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var subject = common.HexToAddress("0x00000000000000000000000000000000000000bb")

func TestTarget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  score.Target
		wantErr bool
	}{
		{name: "profile", target: score.ProfileTarget(3)},
		{name: "zero profile", target: score.ProfileTarget(0), wantErr: true},
		{name: "address", target: score.AddressTarget(subject)},
		{name: "zero address", target: score.AddressTarget(common.Address{}), wantErr: true},
		{name: "service account", target: score.ServiceAccountTarget("x.com", "alice")},
		{name: "service account without account", target: score.ServiceAccountTarget("x.com", ""), wantErr: true},
		{name: "unknown kind", target: score.Target{Kind: "group"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTarget_Key(t *testing.T) {
	mixed := common.HexToAddress("0x00000000000000000000000000000000000000Bb")
	require.Equal(t, score.AddressTarget(subject).Key(), score.AddressTarget(mixed).Key())
	require.Equal(t, "profile:3", score.ProfileTarget(3).Key())
	require.Equal(t, "service_account:x.com:alice", score.ServiceAccountTarget("X.com", "alice").Key())
}

func TestTrigger_Invalidate(t *testing.T) {
	ctx := context.Background()
	tx := common.Hash{0x09}

	t.Run("enqueues recompute job", func(t *testing.T) {
		broker := queuemocks.NewBroker(t)
		broker.EXPECT().Enqueue(mock.Anything, queue.ScoreRecompute,
			score.RecomputeJob{Target: score.ProfileTarget(4), TxHash: &tx}).Return("job-1", nil).Once()

		trigger := score.NewTrigger(broker, logger.NewNopLogger())
		require.NoError(t, trigger.Invalidate(ctx, score.ProfileTarget(4), &tx))
	})

	t.Run("invalid target is not enqueued", func(t *testing.T) {
		trigger := score.NewTrigger(queuemocks.NewBroker(t), logger.NewNopLogger())
		require.Error(t, trigger.Invalidate(ctx, score.ProfileTarget(0), nil))
	})

	t.Run("broker failure", func(t *testing.T) {
		broker := queuemocks.NewBroker(t)
		broker.EXPECT().Enqueue(mock.Anything, queue.ScoreRecompute, mock.Anything).
			Return("", queue.ErrClosed).Once()

		trigger := score.NewTrigger(broker, logger.NewNopLogger())
		require.ErrorIs(t, trigger.Invalidate(ctx, score.AddressTarget(subject), nil), queue.ErrClosed)
	})
}

func TestConsumer_Run(t *testing.T) {
	engine := scoremocks.NewEngine(t)
	broker := queuemocks.NewBroker(t)

	job := score.RecomputeJob{Target: score.ProfileTarget(8)}
	payload, err := json.Marshal(job)
	require.NoError(t, err)

	engineDown := errors.New("engine down")
	engine.EXPECT().Recompute(mock.Anything, score.ProfileTarget(8), (*common.Hash)(nil)).Return(engineDown).Once()
	engine.EXPECT().Recompute(mock.Anything, score.ProfileTarget(8), (*common.Hash)(nil)).Return(nil).Once()

	broker.EXPECT().Consume(mock.Anything, queue.ScoreRecompute, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, handler queue.Handler) error {
			msg := &queue.Message{ID: "m1", Queue: queue.ScoreRecompute, Payload: payload, DeliveryCount: 1}
			require.ErrorIs(t, handler(ctx, msg), engineDown)
			require.NoError(t, handler(ctx, msg))

			bad := &queue.Message{ID: "m2", Queue: queue.ScoreRecompute, Payload: []byte("{")}
			require.ErrorIs(t, handler(ctx, bad), queue.ErrPoison)
			return nil
		}).Once()

	consumer := score.NewConsumer(broker, engine, logger.NewNopLogger())
	require.NoError(t, consumer.Run(context.Background()))
}

func TestHTTPEngine_Recompute(t *testing.T) {
	tx := common.Hash{0x07}

	tests := []struct {
		name    string
		status  int
		wantErr string
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "server error", status: http.StatusInternalServerError, wantErr: "500"},
		{name: "bad request", status: http.StatusBadRequest, wantErr: "unknown profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got score.RecomputeJob
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &got))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("unknown profile\n"))
			}))
			t.Cleanup(server.Close)

			engine := score.NewEngine(config.ScoreConfig{
				EngineURL: server.URL,
				Timeout:   icommon.NewDuration(time.Second),
			}, logger.NewNopLogger())

			err := engine.Recompute(context.Background(), score.ProfileTarget(3), &tx)
			require.Equal(t, score.RecomputeJob{Target: score.ProfileTarget(3), TxHash: &tx}, got)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewEngine_WithoutURLLogs(t *testing.T) {
	engine := score.NewEngine(config.ScoreConfig{}, logger.NewNopLogger())
	require.IsType(t, &score.LogEngine{}, engine)
	require.NoError(t, engine.Recompute(context.Background(), score.ProfileTarget(1), nil))
}
