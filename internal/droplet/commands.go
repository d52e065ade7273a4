package droplet

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/droplet/internal/console"
	"github.com/atlanticdynamic/droplet/internal/fancy"
	"github.com/atlanticdynamic/droplet/internal/server"
)

const defaultProgramName = "droplet"

// RunCommands calls BeforeRun on every provider, then runs the command line
// from Arguments. Without a subcommand, serve runs. It may be called once.
func (d *Droplet) RunCommands(ctx context.Context) error {
	if err := d.beforeRun(); err != nil {
		return err
	}

	args := d.Arguments()
	if len(args) == 0 {
		args = []string{defaultProgramName}
	}
	return d.rootCommand(args[0]).Run(ctx, args)
}

func (d *Droplet) rootCommand(program string) *cli.Command {
	return &cli.Command{
		Name:           filepath.Base(program),
		Usage:          "run a droplet application",
		Version:        d.version,
		DefaultCommand: serveCommandName,
		Commands:       append(d.builtinCommands(), d.commands...),
		Writer:         console.NewWriter(d.console, console.StylePlain),
		ErrWriter:      console.NewWriter(d.console, console.StyleError),
		// errors are returned to the caller, never turned into os.Exit
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func (d *Droplet) builtinCommands() []*cli.Command {
	return []*cli.Command{
		d.serveCommand(),
		d.versionCommand(),
		d.providersCommand(),
	}
}

const serveCommandName = "serve"

func (d *Droplet) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  serveCommandName,
		Usage: "Start the server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Address to listen on",
				Value: d.cfg.Server.Host,
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: d.cfg.Server.Port,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig(d.cfg.Server, d.logger)
			cfg.Host = cmd.String("host")
			cfg.Port = cmd.Int("port")

			srv, err := d.server.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			d.logger.Info("Starting server", "factory", d.server.Name(), "address", cfg.Address())
			console.Info(d.console, fmt.Sprintf("Server starting on %s", cfg.Address()))
			return srv.Start(ctx, d.responder)
		},
	}
}

func (d *Droplet) versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(context.Context, *cli.Command) error {
			console.Print(d.console, d.version)
			return nil
		},
	}
}

func (d *Droplet) providersCommand() *cli.Command {
	return &cli.Command{
		Name:  "providers",
		Usage: "List providers, their lifecycle state and the slots they offered",
		Action: func(context.Context, *cli.Command) error {
			console.Print(d.console, d.ProvidersTree())
			return nil
		},
	}
}

// ProvidersTree renders the providers and installed slots as a tree
func (d *Droplet) ProvidersTree() string {
	t := fancy.RootTree(fmt.Sprintf("Droplet %s", d.id))

	providers := fancy.BranchNode("Providers", fmt.Sprintf("(%d)", len(d.registrations)))
	for _, reg := range d.registrations {
		node := fancy.Tree().Root(fmt.Sprintf("%s [%s]", fancy.ProviderText(reg.name), reg.fsm.GetState()))
		for _, c := range reg.claims {
			if c.won {
				node.Child(fancy.ValidText(c.slot + ": installed"))
			} else {
				node.Child(fancy.WarningText(c.slot + ": rejected"))
			}
		}
		providers.Child(node)
	}
	t.Child(providers)

	slots := fancy.BranchNode("Slots", "")
	slots.Child(fmt.Sprintf("%s: %s", fancy.SlotText(SlotServer), d.server.Name()))
	slots.Child(fmt.Sprintf("%s: %T", fancy.SlotText(SlotLog), d.logHandler))
	t.Child(slots)

	return t.String()
}
