package droplet

import (
	"log/slog"
	"reflect"

	"github.com/atlanticdynamic/droplet/internal/config"
	"github.com/atlanticdynamic/droplet/internal/server"
)

// Slot names used in overwrite diagnostics
const (
	SlotServer = "server.Factory"
	SlotLog    = "slog.Handler"
)

// Provider offers services to a Droplet and receives its lifecycle callbacks.
type Provider interface {
	// Provided returns the services offered. It is read once, during New.
	Provided() Providable

	// AfterInit is called once at the end of New, whether or not the
	// provider's offers were installed.
	AfterInit(drop *Droplet)

	// BeforeRun is called once by RunCommands, before any command runs.
	BeforeRun(drop *Droplet)
}

// Providable holds the services a provider offers. A nil field, or an
// interface holding a nil pointer, is not offered.
type Providable struct {
	Server server.Factory
	Log    slog.Handler
}

// ProviderType is a provider the Droplet builds itself from its config
type ProviderType struct {
	Name string
	New  func(cfg *config.Config) (Provider, error)
}

// ProviderName returns the name of the provider's concrete type, without
// package or pointer, e.g. "FastServerProvider".
func ProviderName(p Provider) string {
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// offered reports whether v holds a usable value. Interfaces wrapping a nil
// pointer, map, func or channel are treated as empty.
func offered(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
