package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
)

// Engine recomputes the score of a target from current authoritative state.
// Implementations must be idempotent.
type Engine interface {
	Recompute(ctx context.Context, target Target, txHash *common.Hash) error
}

// NewEngine returns an HTTPEngine when an engine url is configured and a LogEngine otherwise.
func NewEngine(cfg config.ScoreConfig, log *logger.Logger) Engine {
	if cfg.EngineURL == "" {
		log.Warn("no score engine url configured, recompute requests are only logged")
		return NewLogEngine(log)
	}

	return NewHTTPEngine(cfg, log)
}

// HTTPEngine posts recompute requests to a remote score service.
type HTTPEngine struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

func NewHTTPEngine(cfg config.ScoreConfig, log *logger.Logger) *HTTPEngine {
	return &HTTPEngine{
		url:    cfg.EngineURL,
		client: &http.Client{Timeout: cfg.Timeout.Duration},
		log:    log,
	}
}

// Recompute posts the job as JSON. Any non 2xx response is an error.
func (e *HTTPEngine) Recompute(ctx context.Context, target Target, txHash *common.Hash) error {
	body, err := json.Marshal(RecomputeJob{Target: target, TxHash: txHash})
	if err != nil {
		return fmt.Errorf("failed to encode recompute request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build recompute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("recompute of %s failed: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:mnd
		return fmt.Errorf("recompute of %s failed: %s: %s", target, resp.Status, bytes.TrimSpace(msg))
	}

	return nil
}

// LogEngine only logs recompute requests.
type LogEngine struct {
	log *logger.Logger
}

func NewLogEngine(log *logger.Logger) *LogEngine {
	return &LogEngine{log: log}
}

func (e *LogEngine) Recompute(_ context.Context, target Target, txHash *common.Hash) error {
	if txHash != nil {
		e.log.Infof("recompute score of %s (tx %s)", target, txHash.Hex())
		return nil
	}

	e.log.Infof("recompute score of %s", target)
	return nil
}
