package testutil

import (
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/droplet/internal/droplet"
	"github.com/atlanticdynamic/droplet/internal/server"
)

// Events records lifecycle callbacks across providers, in call order
type Events struct {
	mutex   sync.Mutex
	entries []string
}

// Add appends an entry
func (e *Events) Add(entry string) {
	if e == nil {
		return
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.entries = append(e.entries, entry)
}

// All returns a copy of the entries
func (e *Events) All() []string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	out := make([]string, len(e.entries))
	copy(out, e.entries)
	return out
}

// Lifecycle implements the callback half of droplet.Provider and records
// what it saw. Embed it in a fake provider.
type Lifecycle struct {
	Label  string
	Events *Events

	AfterInitFlag  bool
	BeforeRunFlag  bool
	AfterInitCount int
	BeforeRunCount int

	// ServerAtAfterInit is drop.Server() as seen from AfterInit
	ServerAtAfterInit server.Factory
}

// AfterInit implements droplet.Provider
func (l *Lifecycle) AfterInit(drop *droplet.Droplet) {
	l.AfterInitFlag = true
	l.AfterInitCount++
	l.ServerAtAfterInit = drop.Server()
	l.Events.Add(l.Label + ".AfterInit")
}

// BeforeRun implements droplet.Provider
func (l *Lifecycle) BeforeRun(*droplet.Droplet) {
	l.BeforeRunFlag = true
	l.BeforeRunCount++
	l.Events.Add(l.Label + ".BeforeRun")
}

// FastServerProvider offers its own "FastServer" factory
type FastServerProvider struct {
	Lifecycle
	Factory *MockFactory
}

// NewFastServerProvider creates a FastServerProvider that records into events
func NewFastServerProvider(events *Events) *FastServerProvider {
	return &FastServerProvider{
		Lifecycle: Lifecycle{Label: "Fast", Events: events},
		Factory:   NewMockFactory("FastServer"),
	}
}

// Provided implements droplet.Provider
func (p *FastServerProvider) Provided() droplet.Providable {
	return droplet.Providable{Server: p.Factory}
}

// SlowServerProvider offers its own "SlowServer" factory
type SlowServerProvider struct {
	Lifecycle
	Factory *MockFactory
}

// NewSlowServerProvider creates a SlowServerProvider that records into events
func NewSlowServerProvider(events *Events) *SlowServerProvider {
	return &SlowServerProvider{
		Lifecycle: Lifecycle{Label: "Slow", Events: events},
		Factory:   NewMockFactory("SlowServer"),
	}
}

// Provided implements droplet.Provider
func (p *SlowServerProvider) Provided() droplet.Providable {
	return droplet.Providable{Server: p.Factory}
}

// LogProvider offers a log handler
type LogProvider struct {
	Lifecycle
	Handler slog.Handler
}

// NewLogProvider creates a LogProvider offering handler
func NewLogProvider(handler slog.Handler, events *Events) *LogProvider {
	return &LogProvider{Lifecycle: Lifecycle{Label: "Log", Events: events}, Handler: handler}
}

// Provided implements droplet.Provider
func (p *LogProvider) Provided() droplet.Providable {
	return droplet.Providable{Log: p.Handler}
}

// FullStackProvider offers both a server and a log handler
type FullStackProvider struct {
	Lifecycle
	Server  server.Factory
	Handler slog.Handler
}

// NewFullStackProvider creates a FullStackProvider offering factory and handler
func NewFullStackProvider(factory server.Factory, handler slog.Handler, events *Events) *FullStackProvider {
	return &FullStackProvider{
		Lifecycle: Lifecycle{Label: "FullStack", Events: events},
		Server:    factory,
		Handler:   handler,
	}
}

// Provided implements droplet.Provider
func (p *FullStackProvider) Provided() droplet.Providable {
	return droplet.Providable{Server: p.Server, Log: p.Handler}
}

// PassiveProvider offers nothing and only observes the lifecycle
type PassiveProvider struct {
	Lifecycle
}

// NewPassiveProvider creates a PassiveProvider that records into events
func NewPassiveProvider(events *Events) *PassiveProvider {
	return &PassiveProvider{Lifecycle{Label: "Passive", Events: events}}
}

// Provided implements droplet.Provider
func (p *PassiveProvider) Provided() droplet.Providable {
	return droplet.Providable{}
}
