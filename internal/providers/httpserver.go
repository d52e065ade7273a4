package providers

import (
	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/droplet"
	"github.com/atlanticdynamic/droplet/internal/server/httpserver"
)

// HTTPServerProvider offers the go-supervisor backed HTTP server. Listing it
// in the config makes the choice explicit; the droplet uses the same server
// when no provider offers one.
type HTTPServerProvider struct {
	factory httpserver.Factory
}

// NewHTTPServerProvider creates the provider. It takes no settings.
func NewHTTPServerProvider(*config.Config) (droplet.Provider, error) {
	return &HTTPServerProvider{factory: httpserver.NewFactory()}, nil
}

// Provided implements droplet.Provider
func (p *HTTPServerProvider) Provided() droplet.Providable {
	return droplet.Providable{Server: p.factory}
}

// AfterInit implements droplet.Provider
func (p *HTTPServerProvider) AfterInit(drop *droplet.Droplet) {
	if drop.Server() != p.factory {
		drop.Logger().Debug("Another server was installed", "server", drop.Server().Name())
	}
}

// BeforeRun implements droplet.Provider
func (p *HTTPServerProvider) BeforeRun(*droplet.Droplet) {}
