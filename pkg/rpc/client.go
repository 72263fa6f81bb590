package rpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
)

var (
	// ErrRateLimited is returned when the provider throttled the request.
	ErrRateLimited = errors.New("rpc: rate limited")

	// ErrResponseTooLarge is returned when the provider refused a log query for returning too many results.
	ErrResponseTooLarge = errors.New("rpc: response too large")

	// ErrEntityNotFound is returned by view readers when the contract has no entity with the requested id.
	ErrEntityNotFound = errors.New("rpc: entity not found")
)

// ChainClient defines the chain data provider used by the poller and the processors.
// Errors are classified so callers can match ErrRateLimited and ErrResponseTooLarge with errors.Is.
type ChainClient interface {
	// Close closes the RPC client connection.
	Close()

	// GetLogs retrieves every log emitted by address in the inclusive block range.
	GetLogs(ctx context.Context, address common.Address, fromBlock, toBlock uint64) ([]types.Log, error)

	// CallContract executes a read-only call; a nil blockNumber reads the latest state.
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// GetConfirmedBlockNumber returns the highest block considered confirmed for the given finality.
	// lag is subtracted from the head when finality is latest.
	GetConfirmedBlockNumber(ctx context.Context, finality itypes.BlockFinality, lag uint64) (uint64, error)
}
