package console

import (
	"io"
	"os"
	"sync"

	"github.com/atlanticdynamic/droplet/internal/fancy"
)

var _ Console = (*Terminal)(nil)

// Terminal writes styled output to an io.Writer, normally stdout.
type Terminal struct {
	out   io.Writer
	mutex sync.Mutex
}

// NewTerminal creates a Terminal console. A nil writer means os.Stdout.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out}
}

// Output implements Console
func (t *Terminal) Output(text string, style Style, newLine bool) {
	rendered := render(text, style)
	if newLine {
		rendered += "\n"
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	// a console has nowhere to report its own write failures
	_, _ = io.WriteString(t.out, rendered)
}

func render(text string, style Style) string {
	if text == "" {
		return text
	}
	switch style {
	case StyleInfo:
		return fancy.InfoStyle.Render(text)
	case StyleSuccess:
		return fancy.ValidText(text)
	case StyleWarning:
		return fancy.WarningText(text)
	case StyleError:
		return fancy.ErrorText(text)
	default:
		return text
	}
}
