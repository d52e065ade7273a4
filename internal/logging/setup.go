// Package logging builds the slog handlers used by the droplet and buffers
// log records written before the final handler is known.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/atlanticdynamic/droplet/internal/config"
)

// levelSettings describes how a configured level name maps onto a handler
type levelSettings struct {
	level     slog.Level
	caller    bool
	timestamp bool
}

func parseLevel(logLevel string) levelSettings {
	switch strings.ToLower(logLevel) {
	case "trace":
		return levelSettings{level: slog.LevelDebug, caller: true, timestamp: true}
	case "debug":
		return levelSettings{level: slog.LevelDebug, timestamp: true}
	case "warn", "warning":
		return levelSettings{level: slog.LevelWarn}
	case "error":
		return levelSettings{level: slog.LevelError}
	default:
		return levelSettings{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a charmbracelet/log text handler with the
// provided writer and log level. A nil writer means os.Stderr.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	s := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: s.timestamp,
		ReportCaller:    s.caller,
		Level:           log.Level(s.level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer
// and log level. A nil writer means os.Stdout.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	s := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     s.level,
		AddSource: s.caller,
	})
}

// NewHandler picks the text or JSON handler for the configured format.
// Unspecified formats fall back to text.
func NewHandler(format config.LogFormat, level config.LogLevel, writer io.Writer) slog.Handler {
	if format == config.LogFormatJSON {
		return SetupHandlerJSON(level.String(), writer)
	}
	return SetupHandlerText(level.String(), writer)
}

// NewHandlerFromConfig opens the configured output and builds the handler
// for it.
func NewHandlerFromConfig(cfg config.Logging) (slog.Handler, error) {
	output := cfg.Output
	if output == "" {
		output = OutputStderr
	}
	w, err := OpenOutput(output)
	if err != nil {
		return nil, err
	}
	return NewHandler(cfg.Format, cfg.Level, w), nil
}

// SetupLogger configures the default logger based on provided log level
func SetupLogger(logLevel string) {
	slog.SetDefault(slog.New(SetupHandlerText(logLevel, nil)))
}
