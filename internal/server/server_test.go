package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/droplet/internal/config"
)

type nopServer struct{ cfg Config }

func (s *nopServer) Start(context.Context, http.Handler) error { return nil }

func TestNewConfig(t *testing.T) {
	t.Parallel()
	settings := config.Default().Server
	settings.Host = "127.0.0.1"
	settings.Port = 9999
	settings.IdleTimeout = config.FromDuration(3 * time.Second)
	logger := slog.Default()

	cfg := NewConfig(settings, logger)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, config.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.IdleTimeout)
	assert.Equal(t, config.DefaultDrainTimeout, cfg.DrainTimeout)
	assert.Same(t, logger, cfg.Logger)
	assert.Equal(t, "127.0.0.1:9999", cfg.Address())
}

func TestFactoryFunc(t *testing.T) {
	t.Parallel()
	var got Config
	factory := FactoryFunc{
		FactoryName: "nop",
		Build: func(cfg Config) (Server, error) {
			got = cfg
			return &nopServer{cfg: cfg}, nil
		},
	}

	var _ Factory = factory
	assert.Equal(t, "nop", factory.Name())

	srv, err := factory.New(Config{Host: "localhost", Port: 1})
	require.NoError(t, err)
	assert.IsType(t, &nopServer{}, srv)
	assert.Equal(t, "localhost", got.Host)

	failing := FactoryFunc{
		FactoryName: "broken",
		Build:       func(Config) (Server, error) { return nil, errors.New("boom") },
	}
	_, err = failing.New(Config{})
	require.EqualError(t, err, "boom")
}
