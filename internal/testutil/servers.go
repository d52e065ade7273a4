package testutil

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/atlanticdynamic/droplet/internal/server"
)

var (
	_ server.Server  = (*MockServer)(nil)
	_ server.Factory = (*MockFactory)(nil)
)

// MockServer is a mock implementation of server.Server
type MockServer struct {
	mock.Mock
}

// Start implements server.Server
func (m *MockServer) Start(ctx context.Context, responder http.Handler) error {
	args := m.Called(ctx, responder)
	return args.Error(0)
}

// MockFactory is a mock implementation of server.Factory
type MockFactory struct {
	mock.Mock
}

// NewMockFactory returns a MockFactory that answers Name with name any
// number of times. Expectations for New are left to the test.
func NewMockFactory(name string) *MockFactory {
	m := &MockFactory{}
	m.On("Name").Return(name).Maybe()
	return m
}

// Name implements server.Factory
func (m *MockFactory) Name() string {
	args := m.Called()
	return args.String(0)
}

// New implements server.Factory
func (m *MockFactory) New(cfg server.Config) (server.Server, error) {
	args := m.Called(cfg)
	srv, _ := args.Get(0).(server.Server)
	return srv, args.Error(1)
}

// ExpectServe sets up factory to build one MockServer whose Start returns
// startErr. The returned server records the responder passed to Start.
func ExpectServe(factory *MockFactory, startErr error) *MockServer {
	srv := &MockServer{}
	factory.On("New", mock.Anything).Return(srv, nil).Once()
	srv.On("Start", mock.Anything, mock.Anything).Return(startErr).Once()
	return srv
}

// Responder returns the handler passed to the last Start call, or nil
func (m *MockServer) Responder() http.Handler {
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Method == "Start" {
			h, _ := m.Calls[i].Arguments.Get(1).(http.Handler)
			return h
		}
	}
	return nil
}

// Config returns the server.Config passed to the last New call
func (m *MockFactory) Config() (server.Config, bool) {
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Method == "New" {
			cfg, ok := m.Calls[i].Arguments.Get(0).(server.Config)
			return cfg, ok
		}
	}
	return server.Config{}, false
}
