// Package finitestate wraps go-fsm for the lifecycle machines used by the droplet
// and its server implementations.
package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Server status values, shared with go-fsm.
const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// TypicalTransitions is the go-fsm transition set for long-running servers.
var TypicalTransitions = fsm.TypicalTransitions

// Machine is the subset of the go-fsm machine used in this module.
type Machine interface {
	// Transition moves the machine to state, or returns an error if the move is not allowed.
	Transition(state string) error

	// TransitionBool is Transition without the error detail.
	TransitionBool(state string) bool

	// GetState returns the current state.
	GetState() string
}

// New creates a server status machine in StatusNew.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusNew, TypicalTransitions)
}
