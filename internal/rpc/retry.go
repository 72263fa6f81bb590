package rpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

var transientMessages = []string{
	"timeout",
	"deadline exceeded",
	"502",
	"503",
	"504",
	"bad gateway",
	"service unavailable",
	"gateway timeout",
	"connection pool",
	"no available connection",
	"eof",
}

// retryableError reports whether err is a transient transport failure worth retrying in place.
// Rate limiting and oversized responses are left to the caller: the poller shrinks its window
// and the processor hands the job back to the broker.
func retryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, pkgrpc.ErrRateLimited) || errors.Is(err, pkgrpc.ErrResponseTooLarge) ||
		errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	return containsAny(strings.ToLower(err.Error()), transientMessages)
}

// calculateBackoff computes the backoff duration for a given attempt with ±25% jitter.
func calculateBackoff(attempt int, cfg *config.RetryConfig) time.Duration {
	if attempt <= 1 {
		return 0
	}

	backoff := float64(cfg.InitialBackoff.Duration) * math.Pow(cfg.BackoffMultiplier, float64(attempt-2)) //nolint:mnd
	backoff = math.Min(backoff, float64(cfg.MaxBackoff.Duration))

	jitterRange := backoff * 0.25                               //nolint:mnd
	backoff += (rand.Float64() * 2 * jitterRange) - jitterRange //nolint:gosec

	return time.Duration(math.Max(backoff, 0))
}

// retryWithBackoff executes fn with exponential backoff until it succeeds, fails with a
// non-retryable error, the attempts run out or ctx is done.
func retryWithBackoff(ctx context.Context, cfg *config.RetryConfig, operation string, fn func() error) error {
	if cfg == nil {
		return fn()
	}

	var lastErr error
	startTime := time.Now()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled before attempt %d: %w", attempt, err)
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryableError(err) {
			return err
		}

		if attempt >= cfg.MaxAttempts {
			break
		}

		if backoff := calculateBackoff(attempt+1, cfg); backoff > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff (attempt %d/%d): %w",
					attempt, cfg.MaxAttempts, ctx.Err())
			}
		}

		RPCRetryInc(operation)
	}

	return fmt.Errorf("all %d attempts failed after %v (last error: %w)",
		cfg.MaxAttempts, time.Since(startTime), lastErr)
}
