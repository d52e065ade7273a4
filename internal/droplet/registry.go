package droplet

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/droplet/internal/console"
)

// resolveProviders returns the providers from whichever source was configured
func (d *Droplet) resolveProviders() ([]Provider, error) {
	if len(d.providerTypes) > 0 && len(d.initialized) > 0 {
		return nil, ErrProviderSourceConflict
	}

	if len(d.initialized) > 0 {
		var errz []error
		for i, p := range d.initialized {
			if p == nil {
				errz = append(errz, fmt.Errorf("%w: initialized provider %d is nil", ErrProviderInit, i))
			}
		}
		if err := errors.Join(errz...); err != nil {
			return nil, err
		}
		return d.initialized, nil
	}

	providers := make([]Provider, 0, len(d.providerTypes))
	var errz []error
	for _, pt := range d.providerTypes {
		if pt.New == nil {
			errz = append(errz, fmt.Errorf("%w: %s: no constructor", ErrProviderInit, pt.Name))
			continue
		}

		p, err := pt.New(d.cfg)
		switch {
		case err != nil:
			errz = append(errz, fmt.Errorf("%w: %s: %w", ErrProviderInit, pt.Name, err))
		case p == nil:
			errz = append(errz, fmt.Errorf("%w: %s: constructor returned nil", ErrProviderInit, pt.Name))
		default:
			d.logger.Debug("Provider constructed", "type", pt.Name, "provider", ProviderName(p))
			providers = append(providers, p)
		}
	}
	if err := errors.Join(errz...); err != nil {
		return nil, err
	}
	return providers, nil
}

// register installs each slot p offers that is still empty. Offers for
// occupied slots are rejected with a console warning. Nil pointers are
// skipped as if the slot were not offered.
func (d *Droplet) register(p Provider) {
	reg := &registration{provider: p, name: ProviderName(p)}
	d.registrations = append(d.registrations, reg)

	provided := p.Provided()

	if offered(provided.Server) {
		won := d.server == nil
		if won {
			d.server = provided.Server
		}
		d.record(reg, SlotServer, won)
	}

	if offered(provided.Log) {
		won := d.logHandler == nil
		if won {
			d.logHandler = provided.Log
		}
		d.record(reg, SlotLog, won)
	}
}

func (d *Droplet) record(reg *registration, slot string, won bool) {
	reg.claims = append(reg.claims, claim{slot: slot, won: won})
	if won {
		d.logger.Debug("Slot installed", "provider", reg.name, "slot", slot)
		return
	}
	console.Warning(d.console, fmt.Sprintf("%s attempted to overwrite %s.", reg.name, slot))
	d.logger.Warn("Slot already set", "provider", reg.name, "slot", slot)
}
