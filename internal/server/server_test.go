package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/geometria-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresDependencies(t *testing.T) {
	logger := zerolog.Nop()

	_, err := New(nil, &logger, nil)
	assert.Error(t, err)

	_, err = New(config.DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func TestStart_WithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s, err := New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Server.Port = "0"

	s, err := New(cfg, &logger, nil)
	require.NoError(t, err)

	s.SetupHTTPServer(http.NotFoundHandler())
	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, int64(10), int64(s.httpServer.ReadTimeout.Seconds()))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}
