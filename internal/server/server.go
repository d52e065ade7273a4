// Package server defines the server slot of a droplet: the factory a provider
// offers and the server it builds.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/atlanticdynamic/droplet/internal/config"
)

// Server answers requests with a responder until ctx is canceled.
type Server interface {
	Start(ctx context.Context, responder http.Handler) error
}

// Factory builds servers. A droplet holds exactly one Factory.
type Factory interface {
	// Name identifies the implementation in diagnostics.
	Name() string

	// New builds a server for cfg. It does not start listening.
	New(cfg Config) (Server, error)
}

// Config is what a Factory needs to build a Server
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration

	// Logger is used by the server for its own log lines. Nil means slog.Default().
	Logger *slog.Logger
}

// NewConfig converts the [server] settings of a droplet config
func NewConfig(s config.Server, logger *slog.Logger) Config {
	return Config{
		Host:         s.Host,
		Port:         s.Port,
		ReadTimeout:  s.ReadTimeout.AsDuration(),
		WriteTimeout: s.WriteTimeout.AsDuration(),
		IdleTimeout:  s.IdleTimeout.AsDuration(),
		DrainTimeout: s.DrainTimeout.AsDuration(),
		Logger:       logger,
	}
}

// Address returns host:port
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// FactoryFunc adapts a function into a Factory
type FactoryFunc struct {
	FactoryName string
	Build       func(cfg Config) (Server, error)
}

// Name implements Factory
func (f FactoryFunc) Name() string { return f.FactoryName }

// New implements Factory
func (f FactoryFunc) New(cfg Config) (Server, error) { return f.Build(cfg) }
