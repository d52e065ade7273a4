// Package droplet builds the application object that providers register
// services into. Each service slot is filled by the first provider that
// offers it; later offers are rejected with a console warning.
package droplet

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/console"
	"github.com/atlanticdynamic/droplet/internal/finitestate"
	"github.com/atlanticdynamic/droplet/internal/logging"
	"github.com/atlanticdynamic/droplet/internal/server"
	"github.com/atlanticdynamic/droplet/internal/server/httpserver"
)

// DefaultVersion is printed by the version command when WithVersion is not used
const DefaultVersion = "dev"

// Droplet is the application object. Its slots are written only inside New.
type Droplet struct {
	id        uuid.UUID
	arguments []string
	cfg       *config.Config
	console   console.Console
	version   string
	responder http.Handler
	commands  []*cli.Command

	// slots
	server     server.Factory
	logHandler slog.Handler

	logger        *slog.Logger
	machine       finitestate.Machine
	registrations []*registration

	// provider sources, consumed by New
	providerTypes []ProviderType
	initialized   []Provider
}

// claim records one offer a provider made for a slot
type claim struct {
	slot string
	won  bool
}

// registration is the droplet's record of one provider
type registration struct {
	provider Provider
	name     string
	fsm      finitestate.Machine
	claims   []claim
}

// New builds a Droplet. Explicit slots from options are installed first,
// then each provider's offers in order, then defaults for any empty slot.
// AfterInit is called on every provider before New returns.
func New(opts ...Option) (*Droplet, error) {
	d := &Droplet{
		id:        uuid.Must(uuid.NewV6()),
		arguments: os.Args,
		version:   DefaultVersion,
		responder: http.NotFoundHandler(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg == nil {
		d.cfg = config.Default()
	}
	if d.console == nil {
		d.console = console.NewTerminal(os.Stdout)
	}

	startup := logging.NewStartupBuffer()
	d.logger = slog.New(startup.Handler()).With("droplet", d.id.String())

	providers, err := d.resolveProviders()
	if err != nil {
		return nil, err
	}
	d.logger.Info("Providers resolved", "count", len(providers))

	for _, p := range providers {
		d.register(p)
	}

	if err := d.applyDefaults(); err != nil {
		return nil, err
	}

	if err := startup.Replay(d.logHandler); err != nil {
		return nil, fmt.Errorf("failed to replay startup logs: %w", err)
	}
	d.logger = slog.New(d.logHandler).With("droplet", d.id.String())

	if err := d.initLifecycle(); err != nil {
		return nil, err
	}
	if err := d.afterInit(); err != nil {
		return nil, err
	}

	d.logger.Info("Droplet initialized",
		"providers", len(d.registrations),
		"server", d.server.Name())
	return d, nil
}

// applyDefaults fills slots that no option or provider claimed
func (d *Droplet) applyDefaults() error {
	if d.server == nil {
		d.server = httpserver.NewFactory()
		d.logger.Debug("Using default server", "factory", d.server.Name())
	}

	if d.logHandler == nil {
		handler, err := logging.NewHandlerFromConfig(d.cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to create default log handler: %w", err)
		}
		d.logHandler = handler
	}
	return nil
}

// ID returns the instance ID attached to every log line
func (d *Droplet) ID() uuid.UUID {
	return d.id
}

// Server returns the installed server factory
func (d *Droplet) Server() server.Factory {
	return d.server
}

// LogHandler returns the installed log handler
func (d *Droplet) LogHandler() slog.Handler {
	return d.logHandler
}

// Logger returns a logger on the installed handler
func (d *Droplet) Logger() *slog.Logger {
	return d.logger
}

// Providers returns the providers in registration order
func (d *Droplet) Providers() []Provider {
	providers := make([]Provider, 0, len(d.registrations))
	for _, r := range d.registrations {
		providers = append(providers, r.provider)
	}
	return providers
}

// ProviderState returns the lifecycle state of p, or finitestate.StatusUnknown
// if p is not registered or its type is not comparable. Providers are matched
// by identity.
func (d *Droplet) ProviderState(p Provider) string {
	if r := d.lookup(p); r != nil {
		return r.fsm.GetState()
	}
	return finitestate.StatusUnknown
}

// lookup finds the registration for p. Providers whose dynamic type is not
// comparable, such as value structs holding slices, cannot be matched.
func (d *Droplet) lookup(p Provider) *registration {
	if p == nil || !reflect.TypeOf(p).Comparable() {
		return nil
	}
	idx := slices.IndexFunc(d.registrations, func(r *registration) bool {
		return r.provider == p
	})
	if idx < 0 {
		return nil
	}
	return d.registrations[idx]
}

// Console returns the diagnostic console
func (d *Droplet) Console() console.Console {
	return d.console
}

// Config returns the configuration
func (d *Droplet) Config() *config.Config {
	return d.cfg
}

// Arguments returns a copy of the command line
func (d *Droplet) Arguments() []string {
	return slices.Clone(d.arguments)
}

// Commands returns the commands added with WithCommands
func (d *Droplet) Commands() []*cli.Command {
	return slices.Clone(d.commands)
}

// Version returns the version printed by the version command
func (d *Droplet) Version() string {
	return d.version
}
