package httpserver

import "github.com/atlanticdynamic/droplet/internal/server"

// FactoryName is the name reported by Factory
const FactoryName = "httpserver"

// Factory builds Server values. It is the default server.Factory of a droplet.
type Factory struct{}

var _ server.Factory = Factory{}

// NewFactory returns the httpserver factory
func NewFactory() Factory { return Factory{} }

// Name implements server.Factory
func (Factory) Name() string { return FactoryName }

// New implements server.Factory
func (Factory) New(cfg server.Config) (server.Server, error) {
	srv, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return srv, nil
}
