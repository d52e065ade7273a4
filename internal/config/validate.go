package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration and returns every problem found
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionLatest
	}
	if c.Version != VersionLatest {
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, c.Version)
	}

	errz := []error{}

	if c.Server.Host == "" {
		errz = append(errz, fmt.Errorf("%w: server.host", ErrMissingRequiredField))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errz = append(errz, fmt.Errorf("%w: server.port %d out of range", ErrInvalidValue, c.Server.Port))
	}
	for name, d := range map[string]Duration{
		"read_timeout":  c.Server.ReadTimeout,
		"write_timeout": c.Server.WriteTimeout,
		"idle_timeout":  c.Server.IdleTimeout,
		"drain_timeout": c.Server.DrainTimeout,
	} {
		if d < 0 {
			errz = append(errz, fmt.Errorf("%w: server.%s must not be negative", ErrInvalidValue, name))
		}
	}

	if !c.Logging.Level.IsValid() {
		errz = append(errz, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level))
	}
	if !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: logging.format %q", ErrInvalidValue, c.Logging.Format))
	}

	seen := make(map[string]bool, len(c.Providers))
	for i, name := range c.Providers {
		if name == "" {
			errz = append(errz, fmt.Errorf("%w: providers[%d] is empty", ErrMissingRequiredField, i))
			continue
		}
		if seen[name] {
			errz = append(errz, fmt.Errorf("%w: provider %s listed more than once", ErrDuplicateID, name))
			continue
		}
		seen[name] = true
	}

	return errors.Join(errz...)
}
