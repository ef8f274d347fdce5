package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/handler"
	dashboardhttp "github.com/MKhiriev/go-invoice-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	require.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: &dashboardhttp.Handler{}}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoListenAddr)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: 7 * time.Second}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "localhost:0", h.server.Addr)
	assert.Equal(t, 7*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, h.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
}

func TestServer_RunUntilContextDone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})

	// reserve a free port
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := &server{
		httpServer: newHTTPServer(handler, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	require.Error(t, s.run(context.Background()))
}
