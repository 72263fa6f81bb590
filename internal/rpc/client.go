package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"go.uber.org/ratelimit"
)

// Compile-time check to ensure Client implements pkgrpc.ChainClient interface.
var _ pkgrpc.ChainClient = (*Client)(nil)

// Client wraps the go-ethereum client with pacing, per-request timeouts, retries of transient
// failures and classification of provider errors.
type Client struct {
	eth     *ethclient.Client
	limiter ratelimit.Limiter
	timeout time.Duration
	retry   *config.RetryConfig
	log     *logger.Logger
}

// NewClient dials the configured endpoint.
func NewClient(ctx context.Context, cfg config.ChainConfig, log *logger.Logger) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.RPCURL, err)
	}

	return newClient(ethclient.NewClient(rpcClient), cfg, log), nil
}

func newClient(eth *ethclient.Client, cfg config.ChainConfig, log *logger.Logger) *Client {
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &Client{
		eth:     eth,
		limiter: limiter,
		timeout: cfg.RequestTimeout.Duration,
		retry:   cfg.Retry,
		log:     log,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// GetLogs retrieves every log emitted by address in [fromBlock, toBlock].
func (c *Client) GetLogs(ctx context.Context, address common.Address,
	fromBlock, toBlock uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{address},
	}

	var logs []types.Log
	err := c.do(ctx, "eth_getLogs", func(ctx context.Context) error {
		var err error
		logs, err = c.eth.FilterLogs(ctx, query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("eth_getLogs [%d, %d] for %s: %w", fromBlock, toBlock, address.Hex(), err)
	}

	return logs, nil
}

// CallContract executes a read-only contract call.
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := c.do(ctx, "eth_call", func(ctx context.Context) error {
		var err error
		out, err = c.eth.CallContract(ctx, msg, blockNumber)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("eth_call to %s: %w", msg.To, err)
	}

	return out, nil
}

// GetConfirmedBlockNumber returns the head block for the given finality.
func (c *Client) GetConfirmedBlockNumber(ctx context.Context, finality itypes.BlockFinality,
	lag uint64) (uint64, error) {
	var tag *big.Int
	if finality != itypes.FinalityLatest {
		tag = big.NewInt(int64(finality.BlockTag()))
	}

	var header *types.Header
	err := c.do(ctx, "eth_getBlockByNumber", func(ctx context.Context) error {
		var err error
		header, err = c.eth.HeaderByNumber(ctx, tag)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s header: %w", finality, err)
	}

	head := header.Number.Uint64()
	if finality == itypes.FinalityLatest {
		if head < lag {
			return 0, nil
		}
		return head - lag, nil
	}

	return head, nil
}

// do paces, times out, retries and classifies a single provider call.
func (c *Client) do(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	start := time.Now()
	RPCMethodInc(method)

	err := retryWithBackoff(ctx, c.retry, method, func() error {
		c.limiter.Take()

		callCtx, cancel := c.withTimeout(ctx)
		defer cancel()

		return classifyError(fn(callCtx))
	})

	RPCMethodDuration(method, time.Since(start))

	if err != nil {
		RPCMethodError(method, errorType(err))
		c.log.Debugf("%s failed after %v: %v", method, time.Since(start), err)
	}

	return err
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
