package dispatch

import "errors"

var (
	// ErrDuplicateKernel is returned when a (functional, type) pair already
	// has a kernel. The existing kernel is kept.
	ErrDuplicateKernel = errors.New("kernel already registered")

	// ErrUnknownFunctional is returned when a name does not resolve to a
	// functional of the registry.
	ErrUnknownFunctional = errors.New("unknown functional")

	// ErrInvalidFunctional is returned when a handle does not belong to the
	// registry's functional namespace.
	ErrInvalidFunctional = errors.New("invalid functional")

	// ErrInvalidDatapointType is returned by public registration for types
	// that are not custom datapoint types.
	ErrInvalidDatapointType = errors.New("invalid datapoint type")

	// ErrFunctionalNotRegistered is returned when dispatching a functional
	// that never had a kernel registered.
	ErrFunctionalNotRegistered = errors.New("functional has no registered kernels")

	// ErrNoKernel is returned when no kernel matches the input type and
	// passthrough is not allowed.
	ErrNoKernel = errors.New("no kernel for input type")
)
