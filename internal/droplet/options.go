package droplet

import (
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/console"
	"github.com/atlanticdynamic/droplet/internal/server"
)

// Option configures a Droplet in New
type Option func(*Droplet)

// WithArguments sets the command line, program name first. Defaults to os.Args.
func WithArguments(args ...string) Option {
	return func(d *Droplet) {
		d.arguments = append([]string(nil), args...)
	}
}

// WithConfig sets the configuration handed to provider types and defaults.
func WithConfig(cfg *config.Config) Option {
	return func(d *Droplet) {
		if cfg != nil {
			d.cfg = cfg
		}
	}
}

// WithConsole sets the diagnostic console. Defaults to a terminal on stdout.
func WithConsole(c console.Console) Option {
	return func(d *Droplet) {
		if c != nil {
			d.console = c
		}
	}
}

// WithServer pre-sets the server slot. It beats every provider.
func WithServer(factory server.Factory) Option {
	return func(d *Droplet) {
		if offered(factory) {
			d.server = factory
		}
	}
}

// WithLogHandler pre-sets the log slot. It beats every provider.
func WithLogHandler(handler slog.Handler) Option {
	return func(d *Droplet) {
		if offered(handler) {
			d.logHandler = handler
		}
	}
}

// WithProviders sets provider types to build from the config, in order.
func WithProviders(types ...ProviderType) Option {
	return func(d *Droplet) {
		d.providerTypes = append(d.providerTypes, types...)
	}
}

// WithInitializedProviders sets ready-made providers, in order.
func WithInitializedProviders(providers ...Provider) Option {
	return func(d *Droplet) {
		d.initialized = append(d.initialized, providers...)
	}
}

// WithCommands adds commands after the built-in ones.
func WithCommands(commands ...*cli.Command) Option {
	return func(d *Droplet) {
		d.commands = append(d.commands, commands...)
	}
}

// WithResponder sets the handler served by the serve command.
func WithResponder(responder http.Handler) Option {
	return func(d *Droplet) {
		if responder != nil {
			d.responder = responder
		}
	}
}

// WithVersion sets the version printed by the version command.
func WithVersion(version string) Option {
	return func(d *Droplet) {
		d.version = version
	}
}
