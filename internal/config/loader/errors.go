package loader

import (
	"errors"
	"fmt"
)

// Loader-specific errors
var (
	ErrNoSourceProvided     = errors.New("no source provided to loader")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileNotFound         = errors.New("config file does not exist")
	ErrParseToml            = errors.New("failed to parse TOML")
)

// FormatFileError creates an error with file path context
func FormatFileError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
