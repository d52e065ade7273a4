package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/atlanticdynamic/droplet/internal/config/loader"
	"github.com/atlanticdynamic/droplet/internal/interpolation"
)

// expandDocument replaces ${VAR} and ${VAR:default} references in every
// string value of the document. Port is numeric and never expanded.
func expandDocument(doc *loader.Document, lookup interpolation.LookupFunc) error {
	if doc == nil {
		return nil
	}

	var errz []error
	expand := func(field string, value *string) {
		if value == nil {
			return
		}
		out, err := interpolation.Expand(*value, lookup)
		if err != nil {
			errz = append(errz, fmt.Errorf("%s: %w", field, err))
			return
		}
		*value = out
	}

	if s := doc.Server; s != nil {
		expand("server.host", s.Host)
		expand("server.read_timeout", s.ReadTimeout)
		expand("server.write_timeout", s.WriteTimeout)
		expand("server.idle_timeout", s.IdleTimeout)
		expand("server.drain_timeout", s.DrainTimeout)
	}
	if l := doc.Logging; l != nil {
		expand("logging.level", l.Level)
		expand("logging.format", l.Format)
		expand("logging.output", l.Output)
	}
	for i := range doc.Providers {
		expand(fmt.Sprintf("providers[%d]", i), &doc.Providers[i])
	}
	for name, table := range doc.Provider {
		if err := interpolation.ExpandValues(table, lookup); err != nil {
			errz = append(errz, fmt.Errorf("provider.%s.%w", name, err))
		}
	}

	if err := errors.Join(errz...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return nil
}

func expandEnvDocument(doc *loader.Document) error {
	return expandDocument(doc, os.LookupEnv)
}
