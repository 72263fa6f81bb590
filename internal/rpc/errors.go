package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/ReputationIndexor/internal/common"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

var (
	tooManyResultsRe = regexp.MustCompile(`(?i)query returned more than \d+ results`)
	blockRangeRe     = regexp.MustCompile(`\[(0x[0-9a-fA-F]+),\s*(0x[0-9a-fA-F]+)\]`)

	// messages used by common providers when a log query is too large
	tooLargeMessages = []string{
		"response size exceeded",
		"response is too big",
		"block range is too wide",
		"block range too large",
		"exceed maximum block range",
		"log response size exceeded",
	}

	rateLimitMessages = []string{
		"too many requests",
		"rate limit",
		"exceeded its compute units",
		"request limit reached",
	}
)

// IsTooManyResultsError checks if the error is an RPC "too many results" error (DataError with message in ErrorData).
func IsTooManyResultsError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		errData := fmt.Sprintf("%v", dataErr.ErrorData())
		if tooManyResultsRe.MatchString(errData) {
			return true, errData
		}
	}

	if tooManyResultsRe.MatchString(err.Error()) {
		return true, err.Error()
	}

	return false, ""
}

// ParseSuggestedBlockRange attempts to extract the suggested block range from the error message.
// Expected format: "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."
func ParseSuggestedBlockRange(err string) (fromBlock, toBlock uint64, ok bool) {
	matches := blockRangeRe.FindStringSubmatch(err)

	const expectedMatches = 3 // full match + 2 groups
	if len(matches) != expectedMatches {
		return 0, 0, false
	}

	from, err1 := common.ParseUint64orHex(&matches[1])
	to, err2 := common.ParseUint64orHex(&matches[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return from, to, true
}

// SuggestedBlockRange returns the block range a provider proposed in a "too many results" error.
func SuggestedBlockRange(err error) (fromBlock, toBlock uint64, ok bool) {
	tooMany, msg := IsTooManyResultsError(err)
	if !tooMany {
		return 0, 0, false
	}
	return ParseSuggestedBlockRange(msg)
}

// IsRateLimitError reports whether the provider throttled the request.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
		return true
	}

	return containsAny(strings.ToLower(err.Error()), rateLimitMessages)
}

// IsResponseTooLargeError reports whether the provider refused a log query because of its size.
func IsResponseTooLargeError(err error) bool {
	if err == nil {
		return false
	}

	if tooMany, _ := IsTooManyResultsError(err); tooMany {
		return true
	}

	return containsAny(strings.ToLower(err.Error()), tooLargeMessages)
}

// classifyError wraps provider errors with the matching pkgrpc sentinel.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgrpc.ErrRateLimited), errors.Is(err, pkgrpc.ErrResponseTooLarge):
		return err
	case IsResponseTooLargeError(err):
		return fmt.Errorf("%w: %w", pkgrpc.ErrResponseTooLarge, err)
	case IsRateLimitError(err):
		return fmt.Errorf("%w: %w", pkgrpc.ErrRateLimited, err)
	default:
		return err
	}
}

// errorType is the metrics label of a classified error.
func errorType(err error) string {
	switch {
	case errors.Is(err, pkgrpc.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, pkgrpc.ErrResponseTooLarge):
		return "too_large"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "other"
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
