package droplet

import "errors"

var (
	// ErrProviderInit wraps a failed provider constructor.
	ErrProviderInit = errors.New("provider initialization failed")

	// ErrProviderSourceConflict is returned when both provider types and
	// initialized providers are given.
	ErrProviderSourceConflict = errors.New("provider types and initialized providers are mutually exclusive")

	// ErrLifecycle is returned when a lifecycle phase is dispatched out of order.
	ErrLifecycle = errors.New("lifecycle phase out of order")
)
