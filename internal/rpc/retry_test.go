package rpc

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNetError implements net.Error for testing
type mockNetError struct {
	msg     string
	timeout bool
}

func (e *mockNetError) Error() string   { return e.msg }
func (e *mockNetError) Timeout() bool   { return e.timeout }
func (e *mockNetError) Temporary() bool { return e.timeout }

func fastRetry(attempts int) *config.RetryConfig {
	return &config.RetryConfig{
		MaxAttempts:       attempts,
		InitialBackoff:    common.NewDuration(time.Millisecond),
		MaxBackoff:        common.NewDuration(5 * time.Millisecond),
		BackoffMultiplier: 2.0,
	}
}

func TestRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil error", err: nil},
		{name: "network timeout error", err: &mockNetError{msg: "network timeout", timeout: true}, retryable: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, retryable: true},
		{name: "wrapped connection reset", err: fmt.Errorf("dial: %w", syscall.ECONNRESET), retryable: true},
		{name: "broken pipe", err: syscall.EPIPE, retryable: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, retryable: true},
		{name: "503 service unavailable", err: errors.New("503 Service Unavailable"), retryable: true},
		{name: "502 bad gateway", err: errors.New("502 bad gateway"), retryable: true},
		{name: "connection pool exhausted", err: errors.New("connection pool exhausted"), retryable: true},
		{name: "unexpected eof", err: errors.New("unexpected EOF"), retryable: true},
		{name: "rate limited is left to the caller", err: fmt.Errorf("%w: 429", pkgrpc.ErrRateLimited)},
		{name: "too large is left to the caller", err: fmt.Errorf("x: %w", pkgrpc.ErrResponseTooLarge)},
		{name: "cancelled", err: context.Canceled},
		{name: "invalid parameter", err: errors.New("invalid parameter")},
		{name: "authentication failed", err: errors.New("401 Unauthorized")},
		{name: "execution reverted", err: errors.New("execution reverted")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, retryableError(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	cfg := &config.RetryConfig{
		InitialBackoff:    common.NewDuration(1 * time.Second),
		MaxBackoff:        common.NewDuration(5 * time.Second),
		BackoffMultiplier: 2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 0},
		{attempt: 2, base: time.Second},
		{attempt: 3, base: 2 * time.Second},
		{attempt: 4, base: 4 * time.Second},
		{attempt: 10, base: 5 * time.Second}, // capped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			for range 10 {
				backoff := calculateBackoff(tt.attempt, cfg)
				assert.GreaterOrEqual(t, backoff, tt.base*3/4)
				assert.LessOrEqual(t, backoff, tt.base*5/4)
			}
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	persistent := &mockNetError{msg: "persistent error", timeout: true}

	tests := []struct {
		name      string
		cfg       *config.RetryConfig
		failures  int
		failWith  error
		wantCalls int
		wantErr   string
	}{
		{name: "success first attempt", cfg: fastRetry(3), wantCalls: 1},
		{name: "success after retries", cfg: fastRetry(5), failures: 2, failWith: persistent, wantCalls: 3},
		{
			name: "non-retryable fails immediately", cfg: fastRetry(5),
			failures: 10, failWith: errors.New("invalid parameter"), wantCalls: 1, wantErr: "invalid parameter",
		},
		{
			name: "rate limited fails immediately", cfg: fastRetry(5),
			failures: 10, failWith: pkgrpc.ErrRateLimited, wantCalls: 1, wantErr: "rate limited",
		},
		{
			name: "exhausted", cfg: fastRetry(3),
			failures: 10, failWith: persistent, wantCalls: 3, wantErr: "all 3 attempts failed",
		},
		{
			name: "nil config executes once", cfg: nil,
			failures: 10, failWith: persistent, wantCalls: 1, wantErr: "persistent error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retryWithBackoff(context.Background(), tt.cfg, "test_operation", func() error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			require.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
			require.ErrorIs(t, err, tt.failWith)
		})
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := retryWithBackoff(ctx, fastRetry(5), "test_operation", func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return &mockNetError{msg: "temporary error", timeout: true}
	})

	require.ErrorContains(t, err, "context cancelled")
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, calls)
}
