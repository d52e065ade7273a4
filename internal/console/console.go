// Package console is the diagnostic sink that droplet components print
// human-readable output to.
package console

import "io"

// Style selects how a line is presented by a Console.
type Style int

const (
	StylePlain Style = iota
	StyleInfo
	StyleSuccess
	StyleWarning
	StyleError
)

// String returns the name of the style
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleInfo:
		return "info"
	case StyleSuccess:
		return "success"
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// Console receives human-readable output.
type Console interface {
	// Output writes text in the given style, followed by a newline when newLine is true.
	Output(text string, style Style, newLine bool)
}

// Print writes a plain line.
func Print(c Console, text string) {
	c.Output(text, StylePlain, true)
}

// Info writes an informational line.
func Info(c Console, text string) {
	c.Output(text, StyleInfo, true)
}

// Success writes a success line.
func Success(c Console, text string) {
	c.Output(text, StyleSuccess, true)
}

// Warning writes a warning line.
func Warning(c Console, text string) {
	c.Output(text, StyleWarning, true)
}

// Error writes an error line.
func Error(c Console, text string) {
	c.Output(text, StyleError, true)
}

type writer struct {
	console Console
	style   Style
}

// NewWriter adapts a Console to an io.Writer. Bytes are passed through
// unchanged, without adding newlines.
func NewWriter(c Console, style Style) io.Writer {
	return &writer{console: c, style: style}
}

func (w *writer) Write(p []byte) (int, error) {
	w.console.Output(string(p), w.style, false)
	return len(p), nil
}
