package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/droplet/internal/console"
	"github.com/atlanticdynamic/droplet/internal/droplet"
	"github.com/atlanticdynamic/droplet/internal/logging"
	"github.com/atlanticdynamic/droplet/internal/providers"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	logging.SetupLogger(os.Getenv(logLevelEnvVar))
	if err := run(context.Background(), os.Args, os.Stdout, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the config, builds the droplet from the configured providers and
// runs the command line.
func run(ctx context.Context, args []string, out io.Writer, getenv func(string) string) error {
	cfg, path, err := loadConfig(getenv)
	if err != nil {
		return err
	}

	types, err := providers.Resolve(cfg.Providers)
	if err != nil {
		return fmt.Errorf("failed to resolve providers: %w", err)
	}

	drop, err := droplet.New(
		droplet.WithArguments(args...),
		droplet.WithConfig(cfg),
		droplet.WithConsole(console.NewTerminal(out)),
		droplet.WithProviders(types...),
		droplet.WithCommands(newValidateCmd()),
		droplet.WithVersion(Version),
	)
	if err != nil {
		return err
	}

	slog.SetDefault(drop.Logger())
	if path != "" {
		drop.Logger().Debug("Configuration loaded", "path", path)
	}
	return drop.RunCommands(ctx)
}
