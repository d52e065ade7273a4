package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/atlanticdynamic/droplet/internal/config/loader"
)

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (*Config, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return load(ld)
}

// NewConfigFromBytes loads configuration from TOML bytes
func NewConfigFromBytes(data []byte) (*Config, error) {
	ld, err := loader.NewLoaderFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return load(ld)
}

// NewConfigFromReader loads configuration from an io.Reader
func NewConfigFromReader(reader io.Reader) (*Config, error) {
	ld, err := loader.NewLoaderFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return load(ld)
}

func load(ld loader.Loader) (*Config, error) {
	doc, err := ld.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := expandEnvDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := NewFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}

	return cfg, nil
}

// NewFromDocument converts a loaded document into a Config, applying defaults
// for absent values. It neither expands environment references nor validates.
func NewFromDocument(doc *loader.Document) (*Config, error) {
	cfg := Default()
	if doc == nil {
		return cfg, nil
	}

	if doc.Version != nil && *doc.Version != "" {
		if *doc.Version != VersionLatest {
			return nil, fmt.Errorf("version %s is not supported: %w", *doc.Version, ErrUnsupportedConfigVer)
		}
		cfg.Version = *doc.Version
	}

	if doc.Providers != nil {
		cfg.Providers = append([]string(nil), doc.Providers...)
	}

	var errz []error
	if doc.Server != nil {
		errz = append(errz, applyServer(&cfg.Server, doc.Server))
	}
	if doc.Logging != nil {
		errz = append(errz, applyLogging(&cfg.Logging, doc.Logging))
	}
	if err := errors.Join(errz...); err != nil {
		return nil, err
	}

	for name, table := range doc.Provider {
		cfg.SetProviderSection(name, Section(table))
	}

	return cfg, nil
}

func applyServer(s *Server, doc *loader.ServerDocument) error {
	if doc.Host != nil {
		s.Host = *doc.Host
	}
	if doc.Port != nil {
		s.Port = *doc.Port
	}

	var errz []error
	setDuration := func(field string, raw *string, target *Duration) {
		if raw == nil {
			return
		}
		d, err := ParseDuration(*raw)
		if err != nil {
			errz = append(errz, fmt.Errorf("%w: server.%s: %w", ErrInvalidValue, field, err))
			return
		}
		*target = d
	}
	setDuration("read_timeout", doc.ReadTimeout, &s.ReadTimeout)
	setDuration("write_timeout", doc.WriteTimeout, &s.WriteTimeout)
	setDuration("idle_timeout", doc.IdleTimeout, &s.IdleTimeout)
	setDuration("drain_timeout", doc.DrainTimeout, &s.DrainTimeout)

	return errors.Join(errz...)
}

func applyLogging(l *Logging, doc *loader.LoggingDocument) error {
	var errz []error
	if doc.Level != nil {
		level, err := LogLevelFromString(*doc.Level)
		if err != nil {
			errz = append(errz, err)
		} else if level != LogLevelUnspecified {
			l.Level = level
		}
	}
	if doc.Format != nil {
		format, err := LogFormatFromString(*doc.Format)
		if err != nil {
			errz = append(errz, err)
		} else if format != LogFormatUnspecified {
			l.Format = format
		}
	}
	if doc.Output != nil {
		l.Output = *doc.Output
	}
	return errors.Join(errz...)
}
