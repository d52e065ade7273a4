package droplet

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/droplet/internal/finitestate"
)

// initLifecycle creates the droplet machine and one machine per provider,
// all in the constructed state.
func (d *Droplet) initLifecycle() error {
	machine, err := finitestate.NewProviderMachine(d.logger.WithGroup("fsm").Handler())
	if err != nil {
		return fmt.Errorf("failed to create state machine: %w", err)
	}
	d.machine = machine

	for _, reg := range d.registrations {
		handler := d.logger.WithGroup("fsm").With("provider", reg.name).Handler()
		reg.fsm, err = finitestate.NewProviderMachine(handler)
		if err != nil {
			return fmt.Errorf("failed to create state machine for %s: %w", reg.name, err)
		}
	}
	return nil
}

// afterInit moves the droplet and every provider to initialized, calling
// AfterInit on each provider in order.
func (d *Droplet) afterInit() error {
	if err := d.machine.Transition(finitestate.ProviderInitialized); err != nil {
		return fmt.Errorf("%w: %w", ErrLifecycle, err)
	}
	return d.dispatch(finitestate.ProviderInitialized, func(p Provider) { p.AfterInit(d) })
}

// beforeRun moves the droplet and every provider to running, calling
// BeforeRun on each provider in order. It succeeds only once.
func (d *Droplet) beforeRun() error {
	if err := d.machine.Transition(finitestate.ProviderRunning); err != nil {
		return fmt.Errorf("%w: commands already run: %w", ErrLifecycle, err)
	}
	return d.dispatch(finitestate.ProviderRunning, func(p Provider) { p.BeforeRun(d) })
}

// dispatch transitions each provider to state and invokes callback on it.
// A provider whose transition is refused is skipped.
func (d *Droplet) dispatch(state string, callback func(Provider)) error {
	var errz []error
	for _, reg := range d.registrations {
		if err := reg.fsm.Transition(state); err != nil {
			errz = append(errz, fmt.Errorf("%w: %s to %s: %w", ErrLifecycle, reg.name, state, err))
			continue
		}
		callback(reg.provider)
	}
	return errors.Join(errz...)
}
