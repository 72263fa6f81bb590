package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sampleInterval = 15 * time.Second

// DepthFunc returns the depth of a queue.
type DepthFunc func(ctx context.Context, name string) (int64, error)

// Server is the HTTP server that exposes Prometheus metrics.
type Server struct {
	config *config.MetricsConfig
	log    *logger.Logger
	server *http.Server
	stopCh chan struct{}

	depth  DepthFunc
	queues []string
}

// NewServer creates a new metrics server.
func NewServer(config *config.MetricsConfig, log *logger.Logger) *Server {
	return &Server{
		config: config,
		log:    log,
		stopCh: make(chan struct{}),
	}
}

// WithQueueDepth samples the depth of the queues along with the system metrics.
func (s *Server) WithQueueDepth(depth DepthFunc, queues ...string) *Server {
	s.depth = depth
	s.queues = queues
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.config.Path, promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Start starts the metrics HTTP server and begins collecting system metrics.
func (s *Server) Start(ctx context.Context) error {
	if !s.config.Enabled {
		return nil
	}

	s.server = &http.Server{
		Addr:              s.config.ListenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go s.sample(ctx)

	go func() {
		s.log.Infof("metrics server listening on %s%s", s.config.ListenAddress, s.config.Path)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("metrics server error: %v", err)
		}
	}()

	return nil
}

// Stop stops the metrics HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	close(s.stopCh)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown metrics server: %w", err)
	}

	return nil
}

func (s *Server) sample(ctx context.Context) {
	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	for {
		s.Sample(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		}
	}
}

// Sample updates the system metrics and the queue depths once.
func (s *Server) Sample(ctx context.Context) {
	UpdateSystemMetrics()

	if s.depth == nil {
		return
	}
	for _, name := range s.queues {
		depth, err := s.depth(ctx, name)
		if err != nil {
			s.log.Debugf("failed to sample depth of queue %s: %v", name, err)
			continue
		}
		QueueDepthSet(name, depth)
	}
}
