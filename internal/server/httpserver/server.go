// Package httpserver is the default server of a droplet. It serves a single
// responder on "/" with the go-supervisor httpserver runnable.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/atlanticdynamic/droplet/internal/finitestate"
	"github.com/atlanticdynamic/droplet/internal/server"
)

var (
	_ server.Server        = (*Server)(nil)
	_ supervisor.Runnable  = (*Server)(nil)
	_ supervisor.Stateable = (*Server)(nil)
	_ supervisor.Readiness = (*Server)(nil)
)

// ErrNilResponder is returned by Start when no responder is given
var ErrNilResponder = errors.New("responder cannot be nil")

const defaultShutdownWait = 10 * time.Second

// runnerImplementation abstracts the go-supervisor httpserver runner
type runnerImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	GetStateChan(ctx context.Context) <-chan string
}

// Server wraps the go-supervisor httpserver.Runner
type Server struct {
	cfg    server.Config
	logger *slog.Logger
	fsm    finitestate.Machine

	mutex     sync.Mutex
	responder http.Handler
	runner    runnerImplementation
	runDone   chan struct{}
}

// New creates a server for cfg. Nothing listens until Start or Run.
func New(cfg server.Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("httpserver").With("address", cfg.Address())

	machine, err := finitestate.New(logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		fsm:    machine,
	}, nil
}

// String implements supervisor.Runnable
func (s *Server) String() string {
	return fmt.Sprintf("httpserver.Server[%s]", s.cfg.Address())
}

// Start serves responder under a supervisor until ctx is canceled or the
// process receives a shutdown signal.
func (s *Server) Start(ctx context.Context, responder http.Handler) error {
	done, err := s.setResponder(responder)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(s.logger.Handler()),
		supervisor.WithRunnables(s),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	// the supervisor may return before Run has recorded the final state
	select {
	case <-done:
	case <-time.After(s.shutdownWait()):
		s.logger.Warn("Timed out waiting for server to stop", "state", s.GetState())
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// shutdownWait bounds how long Start waits for Run after the supervisor exits
func (s *Server) shutdownWait() time.Duration {
	if s.cfg.DrainTimeout > 0 {
		return 2 * s.cfg.DrainTimeout
	}
	return defaultShutdownWait
}

// setResponder builds the runner for responder. The returned channel is
// closed when the next Run call returns.
func (s *Server) setResponder(responder http.Handler) (<-chan struct{}, error) {
	if responder == nil {
		return nil, ErrNilResponder
	}

	runner, err := s.newRunner(responder)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.responder = responder
	s.runner = runner
	s.runDone = done
	return done, nil
}

// Routes returns the routes served for responder
func Routes(responder http.Handler, logger *slog.Logger) ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc(
		"droplet",
		"/",
		responder.ServeHTTP,
		accessLog(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return []httpserver.Route{*route}, nil
}

// newRunner builds the underlying httpserver.Runner
func (s *Server) newRunner(responder http.Handler) (*httpserver.Runner, error) {
	routes, err := Routes(responder, s.logger)
	if err != nil {
		return nil, err
	}

	configCallback := func() (*httpserver.Config, error) {
		options := []httpserver.ConfigOption{}
		if s.cfg.ReadTimeout > 0 {
			options = append(options, httpserver.WithReadTimeout(s.cfg.ReadTimeout))
		}
		if s.cfg.WriteTimeout > 0 {
			options = append(options, httpserver.WithWriteTimeout(s.cfg.WriteTimeout))
		}
		if s.cfg.IdleTimeout > 0 {
			options = append(options, httpserver.WithIdleTimeout(s.cfg.IdleTimeout))
		}
		if s.cfg.DrainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(s.cfg.DrainTimeout))
		}

		config, err := httpserver.NewConfig(s.cfg.Address(), routes, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	return runner, nil
}

// Run implements supervisor.Runnable. Start must have set a responder.
func (s *Server) Run(ctx context.Context) error {
	s.mutex.Lock()
	runner := s.runner
	done := s.runDone
	s.runDone = nil
	s.mutex.Unlock()
	if runner == nil {
		return ErrNilResponder
	}
	if done != nil {
		defer close(done)
	}

	if err := s.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}
	if err := s.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}

	s.logger.Info("Starting HTTP server")
	err := runner.Run(ctx)
	if err != nil {
		if stateErr := s.fsm.Transition(finitestate.StatusError); stateErr != nil {
			s.logger.Error("Failed to transition to error state", "error", stateErr)
		}
		return err
	}

	if s.fsm.GetState() != finitestate.StatusStopping {
		if err := s.fsm.Transition(finitestate.StatusStopping); err != nil {
			s.logger.Error("Failed to transition to stopping state", "error", err)
		}
	}
	if err := s.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}
	return nil
}

// Stop implements supervisor.Runnable
func (s *Server) Stop() {
	s.logger.Info("Stopping HTTP server")
	s.fsm.TransitionBool(finitestate.StatusStopping)

	s.mutex.Lock()
	runner := s.runner
	s.mutex.Unlock()
	if runner != nil {
		runner.Stop()
	}
}

// GetState returns the droplet-side state of the server
func (s *Server) GetState() string {
	return s.fsm.GetState()
}

// IsReady implements supervisor.Readiness. It is true from the moment Run
// hands control to the runner until shutdown begins.
func (s *Server) IsReady() bool {
	return s.fsm.GetState() == finitestate.StatusRunning
}

// GetStateChan returns the state channel of the underlying runner
func (s *Server) GetStateChan(ctx context.Context) <-chan string {
	s.mutex.Lock()
	runner := s.runner
	s.mutex.Unlock()
	if runner == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return runner.GetStateChan(ctx)
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.cfg.Address()
}
