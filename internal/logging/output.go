package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Named outputs accepted by OpenOutput
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// OpenOutput resolves a logging output name to a writer. Supported values:
//   - "stdout"
//   - "stderr"
//   - "file:///path/to/file" or any path containing a separator
//
// Files are opened for append and their parent directories are created.
func OpenOutput(output string) (io.Writer, error) {
	stream, path, err := resolveOutput(output)
	if err != nil {
		return nil, err
	}
	if stream != nil {
		return stream, nil
	}
	f, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenLazyOutput is OpenOutput, except that a file output is returned as a
// *LazyFile that is opened on the first write.
func OpenLazyOutput(output string) (io.Writer, error) {
	stream, path, err := resolveOutput(output)
	if err != nil {
		return nil, err
	}
	if stream != nil {
		return stream, nil
	}
	return &LazyFile{path: path}, nil
}

// resolveOutput returns either a standard stream or a file path for output
func resolveOutput(output string) (io.Writer, string, error) {
	switch {
	case output == OutputStdout:
		return os.Stdout, "", nil
	case output == OutputStderr:
		return os.Stderr, "", nil
	case strings.HasPrefix(output, "file://"):
		return nil, strings.TrimPrefix(output, "file://"), nil
	case strings.Contains(output, "://"):
		return nil, "", fmt.Errorf("unsupported log output scheme: %s", output)
	case strings.ContainsAny(output, `/\`):
		return nil, output, nil
	default:
		return nil, "", fmt.Errorf("unsupported log output: %q", output)
	}
}

// LazyFile is a log file that is created on the first Write. Once closed it
// rejects further writes with os.ErrClosed.
type LazyFile struct {
	path string

	mutex  sync.Mutex
	file   *os.File
	err    error
	closed bool
}

// Path returns the file path
func (l *LazyFile) Path() string {
	return l.path
}

// Opened reports whether the file has been created
func (l *LazyFile) Opened() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.file != nil
}

// Write implements io.Writer
func (l *LazyFile) Write(p []byte) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.closed {
		return 0, os.ErrClosed
	}
	if l.file == nil && l.err == nil {
		l.file, l.err = openLogFile(l.path)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.file.Write(p)
}

// Close implements io.Closer. Closing a file that was never opened only
// marks it closed.
func (l *LazyFile) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.closed = true
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
