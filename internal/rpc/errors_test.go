package rpc

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/stretchr/testify/require"
)

type mockDataError struct {
	data any
	msg  string
}

func (m *mockDataError) Error() string  { return m.msg }
func (m *mockDataError) ErrorData() any { return m.data }

const tooManyResults = "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."

func TestIsTooManyResultsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantMatch bool
	}{
		{name: "nil error"},
		{name: "unrelated error", err: errors.New("some other error")},
		{name: "DataError with unrelated message", err: &mockDataError{data: "nope", msg: "nope"}},
		{name: "DataError with too many results", err: &mockDataError{data: tooManyResults, msg: "error"}, wantMatch: true},
		{name: "plain message", err: errors.New(tooManyResults), wantMatch: true},
		{name: "similar message", err: &mockDataError{data: "Query returned less than 20000 results.", msg: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotMatch, gotData := IsTooManyResultsError(tt.err)
			require.Equal(t, tt.wantMatch, gotMatch)
			if tt.wantMatch {
				require.Equal(t, tooManyResults, gotData)
			}
		})
	}
}

func TestParseSuggestedBlockRange(t *testing.T) {
	t.Parallel()

	from, to, ok := ParseSuggestedBlockRange(tooManyResults)
	require.True(t, ok)
	require.Equal(t, uint64(0x7dfd25), from)
	require.Equal(t, uint64(0x7e0fcc), to)

	_, _, ok = ParseSuggestedBlockRange("Query returned more than 20000 results.")
	require.False(t, ok)

	_, _, ok = ParseSuggestedBlockRange("")
	require.False(t, ok)
}

func TestSuggestedBlockRange(t *testing.T) {
	t.Parallel()

	from, to, ok := SuggestedBlockRange(classifyError(&mockDataError{data: tooManyResults, msg: "query failed"}))
	require.True(t, ok)
	require.Equal(t, uint64(0x7dfd25), from)
	require.Equal(t, uint64(0x7e0fcc), to)

	_, _, ok = SuggestedBlockRange(classifyError(errors.New("eth_getLogs block range is too wide")))
	require.False(t, ok)

	_, _, ok = SuggestedBlockRange(nil)
	require.False(t, ok)
}

func TestIsRateLimitError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil"},
		{name: "http status", err: rpc.HTTPError{StatusCode: http.StatusTooManyRequests}, want: true},
		{name: "status line", err: errors.New("429 Too Many Requests: {\"code\":-32005}"), want: true},
		{name: "block number containing 429", err: errors.New("header not found for block 4290001")},
		{name: "hash containing 429", err: errors.New("transaction 0xab429f not found")},
		{name: "other http status", err: rpc.HTTPError{StatusCode: http.StatusBadGateway, Status: "502 Bad Gateway"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, IsRateLimitError(tt.err))
		})
	}
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "http 429", err: rpc.HTTPError{StatusCode: http.StatusTooManyRequests, Status: "429 Too Many Requests"},
			want: pkgrpc.ErrRateLimited},
		{name: "rate limit message", err: errors.New("project ID request rate exceeded: rate limit"),
			want: pkgrpc.ErrRateLimited},
		{name: "compute units", err: errors.New("Your app has exceeded its compute units per second capacity"),
			want: pkgrpc.ErrRateLimited},
		{name: "too many results", err: &mockDataError{data: tooManyResults, msg: "query failed"},
			want: pkgrpc.ErrResponseTooLarge},
		{name: "block range", err: errors.New("eth_getLogs block range is too wide"),
			want: pkgrpc.ErrResponseTooLarge},
		{name: "response size", err: errors.New("Log response size exceeded. You can make eth_getLogs requests"),
			want: pkgrpc.ErrResponseTooLarge},
		{name: "already classified", err: fmt.Errorf("wrapped: %w", pkgrpc.ErrRateLimited),
			want: pkgrpc.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyError(tt.err)
			require.ErrorIs(t, got, tt.want)
			require.ErrorContains(t, got, tt.err.Error(), "original error must stay in the chain")
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("execution reverted")
		got := classifyError(err)
		require.Equal(t, err, got)
		require.NotErrorIs(t, got, pkgrpc.ErrRateLimited)
		require.NotErrorIs(t, got, pkgrpc.ErrResponseTooLarge)
		require.NoError(t, classifyError(nil))
	})
}
