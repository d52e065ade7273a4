package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/providers"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate a configuration file",
		ArgsUsage: "<config.toml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
		},
		Action: validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("config file path required")
	}
	configPath := cmd.Args().Get(0)

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := providers.Resolve(cfg.Providers); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	w := cmd.Root().Writer
	fmt.Fprintf(w, "Configuration file %s is valid\n", configPath)
	if cmd.Bool("tree") {
		fmt.Fprintln(w, cfg)
		return nil
	}
	fmt.Fprintln(w, renderConfigSummary(configPath, cfg))
	return nil
}

// renderConfigSummary creates a short summary of the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", cfg.Version)
	fmt.Fprintf(&summary, "- Listen: %s\n", cfg.Server.Address())
	fmt.Fprintf(&summary, "- Providers: %s\n", strings.Join(cfg.Providers, ", "))
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
