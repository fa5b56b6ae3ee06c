package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/handler"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":5011"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndGracefulShutdown(t *testing.T) {
	addr := freeAddress(t)
	cfg := &config.StructuredConfig{
		Server:  config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second},
		Catalog: config.Catalog{Collection: "bobas", IDField: "boba_id"},
	}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())
	assert.ErrorIs(t, err, errServerFailed)
}
