package console

import (
	"strings"
	"sync"
)

var _ Console = (*Debug)(nil)

// Debug is a Console that records plain, unstyled output in memory.
type Debug struct {
	buffer strings.Builder
	lines  []Line
	mutex  sync.Mutex
}

// Line is one Output call recorded by Debug.
type Line struct {
	Text    string
	Style   Style
	NewLine bool
}

// NewDebug creates an empty Debug console.
func NewDebug() *Debug {
	return &Debug{}
}

// Output implements Console
func (d *Debug) Output(text string, style Style, newLine bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.buffer.WriteString(text)
	if newLine {
		d.buffer.WriteString("\n")
	}
	d.lines = append(d.lines, Line{Text: text, Style: style, NewLine: newLine})
}

// OutputBuffer returns everything written so far.
func (d *Debug) OutputBuffer() string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.buffer.String()
}

// Lines returns a copy of the recorded calls.
func (d *Debug) Lines() []Line {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	lines := make([]Line, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// LinesWithStyle returns the text of every recorded call made with style.
func (d *Debug) LinesWithStyle(style Style) []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var out []string
	for _, l := range d.lines {
		if l.Style == style {
			out = append(out, l.Text)
		}
	}
	return out
}

// Reset clears the buffer.
func (d *Debug) Reset() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.buffer.Reset()
	d.lines = nil
}
