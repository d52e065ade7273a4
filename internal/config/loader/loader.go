package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
)

// Loader parses configuration source data into a Document
type Loader interface {
	Load() (*Document, error)
}

// TomlLoader implements Loader for TOML sources
type TomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML configuration loader
func NewTomlLoader(source []byte) *TomlLoader {
	return &TomlLoader{source: source}
}

// Load decodes the TOML source. Unknown keys are rejected so that typos in
// the file surface as errors instead of silently falling back to defaults.
func (l *TomlLoader) Load() (*Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	doc := &Document{}
	decoder := gotoml.NewDecoder(bytes.NewReader(l.source))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}
	return doc, nil
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return NewTomlLoader(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data from reader: %w", err)
	}
	return NewLoaderFromBytes(data)
}

// NewLoaderFromFilePath creates a new Loader from a file path
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, FormatFileError(ErrFileNotFound, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	ext := filepath.Ext(filePath)
	switch ext {
	case ".toml":
		return NewLoaderFromBytes(data)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}
