package logging

import (
	"log/slog"

	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-loglater/storage"
)

// StartupBuffer holds log records emitted before the final log handler is
// chosen. Records are kept in memory until Replay is called.
type StartupBuffer struct {
	collector *loglater.LogCollector
}

// NewStartupBuffer returns an empty buffer with no downstream handler
func NewStartupBuffer() *StartupBuffer {
	return &StartupBuffer{collector: loglater.NewLogCollector(nil)}
}

// Handler returns the slog.Handler that records into the buffer
func (b *StartupBuffer) Handler() slog.Handler {
	return b.collector
}

// Records returns the buffered records
func (b *StartupBuffer) Records() []storage.Record {
	return b.collector.GetLogs()
}

// Replay writes every buffered record to handler, in the order they were logged
func (b *StartupBuffer) Replay(handler slog.Handler) error {
	return b.collector.PlayLogs(handler)
}
