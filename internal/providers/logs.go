package providers

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/droplet"
	"github.com/atlanticdynamic/droplet/internal/logging"
)

// logSettings reads the level and output keys of a [provider.<name>]
// section, falling back to the [logging] table.
func logSettings(cfg *config.Config, name string) (config.LogLevel, string, error) {
	section := cfg.ProviderSection(name)

	level, err := config.LogLevelFromString(section.String("level", cfg.Logging.Level.String()))
	if err != nil {
		return "", "", fmt.Errorf("provider.%s: %w", name, err)
	}

	output := section.String("output", cfg.Logging.Output)
	if output == "" {
		output = logging.OutputStderr
	}
	return level, output, nil
}

// logOutput owns a provider's log destination. File outputs are opened on
// the first write, and released again if the provider's handler was not
// installed.
type logOutput struct {
	handler slog.Handler
	file    *logging.LazyFile
}

func newLogOutput(output string, build func(w io.Writer) slog.Handler) (logOutput, error) {
	w, err := logging.OpenLazyOutput(output)
	if err != nil {
		return logOutput{}, err
	}
	file, _ := w.(*logging.LazyFile)
	return logOutput{handler: build(w), file: file}, nil
}

// release closes the file when drop installed some other handler
func (o *logOutput) release(drop *droplet.Droplet) {
	if o.file == nil || drop.LogHandler() == o.handler {
		return
	}
	if err := o.file.Close(); err != nil {
		drop.Logger().Warn("Failed to close unused log output", "path", o.file.Path(), "error", err)
	}
}

// JSONLogProvider offers a JSON log handler
type JSONLogProvider struct {
	out logOutput
}

// NewJSONLogProvider builds the handler from [provider.jsonlog]
func NewJSONLogProvider(cfg *config.Config) (droplet.Provider, error) {
	level, output, err := logSettings(cfg, NameJSONLog)
	if err != nil {
		return nil, err
	}
	out, err := newLogOutput(output, func(w io.Writer) slog.Handler {
		return logging.SetupHandlerJSON(level.String(), w)
	})
	if err != nil {
		return nil, fmt.Errorf("provider.%s: %w", NameJSONLog, err)
	}
	return &JSONLogProvider{out: out}, nil
}

// Provided implements droplet.Provider
func (p *JSONLogProvider) Provided() droplet.Providable {
	return droplet.Providable{Log: p.out.handler}
}

// AfterInit implements droplet.Provider
func (p *JSONLogProvider) AfterInit(drop *droplet.Droplet) {
	p.out.release(drop)
}

// BeforeRun implements droplet.Provider
func (p *JSONLogProvider) BeforeRun(*droplet.Droplet) {}

// TextLogProvider offers a charmbracelet/log text handler
type TextLogProvider struct {
	out logOutput
}

// NewTextLogProvider builds the handler from [provider.textlog]
func NewTextLogProvider(cfg *config.Config) (droplet.Provider, error) {
	level, output, err := logSettings(cfg, NameTextLog)
	if err != nil {
		return nil, err
	}
	out, err := newLogOutput(output, func(w io.Writer) slog.Handler {
		return logging.SetupHandlerText(level.String(), w)
	})
	if err != nil {
		return nil, fmt.Errorf("provider.%s: %w", NameTextLog, err)
	}
	return &TextLogProvider{out: out}, nil
}

// Provided implements droplet.Provider
func (p *TextLogProvider) Provided() droplet.Providable {
	return droplet.Providable{Log: p.out.handler}
}

// AfterInit implements droplet.Provider
func (p *TextLogProvider) AfterInit(drop *droplet.Droplet) {
	p.out.release(drop)
}

// BeforeRun implements droplet.Provider
func (p *TextLogProvider) BeforeRun(*droplet.Droplet) {}
