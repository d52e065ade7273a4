package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/droplet/internal/config"
)

func TestSetupHandlerText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		logLevel  string
		wantLevel log.Level
	}{
		{"trace level", "trace", log.DebugLevel},
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"mixed case level", "DeBuG", log.DebugLevel},
		{"unknown defaults to info", "loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.IsType(t, &log.Logger{}, handler)
			assert.Equal(t, tt.wantLevel, handler.(*log.Logger).GetLevel())

			slog.New(handler).Error("test message", "key", "value")
			assert.Contains(t, buf.String(), "test message")
			assert.Contains(t, buf.String(), "key")
		})
	}
}

func TestSetupHandlerText_LevelFiltering(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerText("error", buf))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.NotContains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSetupHandlerJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		logLevel    string
		wantDebug   bool
		wantInfo    bool
		wantSource  bool
		wantWarning bool
	}{
		{"trace level", "trace", true, true, true, true},
		{"debug level", "debug", true, true, false, true},
		{"info level", "info", false, true, false, true},
		{"warn level", "WARN", false, false, false, true},
		{"empty defaults to info", "", false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerJSON(tt.logLevel, buf)
			require.IsType(t, &slog.JSONHandler{}, handler)

			logger := slog.New(handler)
			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message", "key", "value")

			output := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info message")))
			assert.Contains(t, output, `"msg":"warn message"`)
			assert.Contains(t, output, `"key":"value"`)
			if tt.wantSource {
				assert.Contains(t, output, `"source"`)
			} else {
				assert.NotContains(t, output, `"source"`)
			}
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}

	assert.IsType(t, &slog.JSONHandler{}, NewHandler(config.LogFormatJSON, config.LogLevelInfo, buf))
	assert.IsType(t, &log.Logger{}, NewHandler(config.LogFormatText, config.LogLevelInfo, buf))
	assert.IsType(t, &log.Logger{}, NewHandler(config.LogFormatUnspecified, config.LogLevelDebug, buf))
}

func TestNewHandlerFromConfig(t *testing.T) {
	t.Parallel()
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "droplet.log")
		handler, err := NewHandlerFromConfig(config.Logging{
			Format: config.LogFormatJSON,
			Level:  config.LogLevelInfo,
			Output: path,
		})
		require.NoError(t, err)

		slog.New(handler).Info("written to file")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"written to file"`)
	})

	t.Run("empty output means stderr", func(t *testing.T) {
		handler, err := NewHandlerFromConfig(config.Logging{})
		require.NoError(t, err)
		assert.IsType(t, &log.Logger{}, handler)
	})

	t.Run("bad output", func(t *testing.T) {
		_, err := NewHandlerFromConfig(config.Logging{Output: "syslog"})
		require.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	SetupLogger("debug")
	assert.NotSame(t, originalDefault, slog.Default())
	assert.IsType(t, &log.Logger{}, slog.Default().Handler())
}
