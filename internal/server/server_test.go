package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/handler"
	myHTTP "github.com/hcorbage/corb3d/internal/handler/http"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop()),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoHTTPHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoHTTPAddress)
}

func TestNewServer_Success(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewHTTPServer_AppliesAddress(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":9999"}, logger.Nop())

	assert.Equal(t, ":9999", srv.server.Addr)
	assert.NotZero(t, srv.server.ReadHeaderTimeout)
}

func TestNewHTTPServer_WrapsTimeout(t *testing.T) {
	inner := http.NotFoundHandler()

	plain := newHTTPServer(inner, config.Server{HTTPAddress: ":0"}, logger.Nop())
	wrapped := newHTTPServer(inner, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())

	assert.NotEqual(t, "*http.timeoutHandler", typeName(plain.server.Handler))
	assert.Equal(t, "*http.timeoutHandler", typeName(wrapped.server.Handler))
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	srv.Shutdown()

	// a server shut down before ListenAndServe reports ErrServerClosed,
	// which RunServer treats as a clean stop
	assert.NoError(t, srv.RunServer())
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
