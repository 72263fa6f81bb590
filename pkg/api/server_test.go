package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	processormocks "github.com/goran-ethernal/ReputationIndexor/internal/processor/mocks"
	queuemocks "github.com/goran-ethernal/ReputationIndexor/internal/queue/mocks"
	storemocks "github.com/goran-ethernal/ReputationIndexor/internal/store/mocks"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *config.APIConfig) (*Server, *storemocks.RawEventStore) {
	t.Helper()

	events := storemocks.NewRawEventStore(t)
	server := NewServer(cfg, events, processormocks.NewEventHandler(t), queuemocks.NewBroker(t), logger.NewNopLogger())
	return server, events
}

func testAPIConfig(enabled bool, address string) *config.APIConfig {
	return &config.APIConfig{
		Enabled:       enabled,
		ListenAddress: address,
		ReadTimeout:   common.Duration{Duration: 5 * time.Second},
		WriteTimeout:  common.Duration{Duration: 10 * time.Second},
		IdleTimeout:   common.Duration{Duration: 60 * time.Second},
	}
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   *config.APIConfig
		validate func(t *testing.T, server *Server)
	}{
		{
			name:   "create server with basic config",
			config: testAPIConfig(true, "localhost:8080"),
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				require.NotNil(t, server.handler)
				require.NotNil(t, server.log)
				require.Equal(t, "localhost:8080", server.server.Addr)
				require.Equal(t, 5*time.Second, server.server.ReadTimeout)
				require.Equal(t, 10*time.Second, server.server.WriteTimeout)
				require.Equal(t, 60*time.Second, server.server.IdleTimeout)
			},
		},
		{
			name: "create server with CORS enabled",
			config: func() *config.APIConfig {
				cfg := testAPIConfig(true, ":9090")
				cfg.CORS = config.CORSConfig{
					Enabled:        true,
					AllowedOrigins: []string{"http://localhost:3000", "https://example.com"},
				}
				return cfg
			}(),
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				req := httptest.NewRequest(http.MethodOptions, "/api/v1/events", nil)
				req.Header.Set("Origin", "https://example.com")
				w := httptest.NewRecorder()
				server.Handler().ServeHTTP(w, req)

				require.Equal(t, http.StatusOK, w.Code)
				require.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:   "CORS headers absent when disabled",
			config: testAPIConfig(true, ":8080"),
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				req := httptest.NewRequest(http.MethodGet, "/api/v1/events/abc", nil)
				req.Header.Set("Origin", "https://example.com")
				w := httptest.NewRecorder()
				server.Handler().ServeHTTP(w, req)

				require.Equal(t, http.StatusBadRequest, w.Code)
				require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, _ := newTestServer(t, tt.config)
			tt.validate(t, server)
		})
	}
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	server, events := newTestServer(t, testAPIConfig(true, ":8080"))
	events.EXPECT().Stats(mock.Anything).Return([]*store.ContractStats{}, nil)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/contracts", http.StatusOK},
		{http.MethodPost, "/api/v1/contracts", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/events/0/process", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, req)

		require.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestServer_Start_Disabled(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, testAPIConfig(false, ":8080"))

	done := make(chan error, 1)
	go func() {
		done <- server.Start(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(1 * time.Second):
		t.Fatal("Start() did not return when server is disabled")
	}
}

func TestServer_Start_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, testAPIConfig(true, "localhost:0"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Server did not shutdown gracefully within timeout")
	}
}

func TestServer_Start_AddressInUse(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	server, _ := newTestServer(t, testAPIConfig(true, listener.Addr().String()))

	done := make(chan error, 1)
	go func() {
		done <- server.Start(context.Background())
	}()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not report the bind failure")
	}
}
