package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Provider lifecycle states. A provider moves through them strictly forward,
// one step at a time.
const (
	ProviderConstructed = "constructed"
	ProviderInitialized = "initialized"
	ProviderRunning     = "running"
)

// ProviderTransitions allows constructed -> initialized -> running and nothing else.
var ProviderTransitions = map[string][]string{
	ProviderConstructed: {ProviderInitialized},
	ProviderInitialized: {ProviderRunning},
	ProviderRunning:     {},
}

// NewProviderMachine creates a lifecycle machine in ProviderConstructed.
func NewProviderMachine(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, ProviderConstructed, ProviderTransitions)
}
