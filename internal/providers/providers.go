// Package providers is the catalog of built-in providers that a config file
// can select by name.
package providers

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/droplet"
)

// Built-in provider names
const (
	NameHTTPServer = "httpserver"
	NameJSONLog    = "jsonlog"
	NameTextLog    = "textlog"
)

var catalog = map[string]droplet.ProviderType{
	NameHTTPServer: {Name: NameHTTPServer, New: NewHTTPServerProvider},
	NameJSONLog:    {Name: NameJSONLog, New: NewJSONLogProvider},
	NameTextLog:    {Name: NameTextLog, New: NewTextLogProvider},
}

// Names returns the built-in provider names, sorted
func Names() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Lookup returns the built-in provider type called name
func Lookup(name string) (droplet.ProviderType, bool) {
	pt, ok := catalog[name]
	return pt, ok
}

// Resolve maps names to provider types, keeping their order. Every unknown
// name is reported.
func Resolve(names []string) ([]droplet.ProviderType, error) {
	types := make([]droplet.ProviderType, 0, len(names))
	var errz []error
	for _, name := range names {
		pt, ok := Lookup(name)
		if !ok {
			errz = append(errz, fmt.Errorf("%w: %q (available: %v)", config.ErrUnknownProvider, name, Names()))
			continue
		}
		types = append(types, pt)
	}
	if err := errors.Join(errz...); err != nil {
		return nil, err
	}
	return types, nil
}
