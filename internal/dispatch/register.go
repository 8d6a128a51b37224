package dispatch

import (
	"fmt"

	"github.com/born-ml/vision/internal/datapoints"
)

// Register stores kernel as the implementation of f for inputs of type t.
//
// When t is a datapoint type and autoWrap is true, the kernel receives the
// bare tensor and its result is rewrapped into the input's type (see
// WithDatapointWrapping). Kernels that propagate metadata themselves, or
// produce several outputs, register with autoWrap false.
func (r *Registry) Register(f *Functional, t *datapoints.Type, kernel Kernel, autoWrap bool) error {
	if !r.Owns(f) {
		return fmt.Errorf("%w: %v is not defined in this registry", ErrInvalidFunctional, f)
	}
	if t == nil || kernel == nil {
		return fmt.Errorf("register %s: type and kernel are required", f)
	}

	if t.IsDatapoint() && autoWrap {
		return r.insert(f, t, WithDatapointWrapping(kernel), "auto")
	}
	return r.insert(f, t, kernel, "none")
}

// RegisterMultiOutput stores a kernel that returns a fixed-size collection of
// outputs. For datapoint types every output is rewrapped into the input's
// type (see WithMultiOutputWrapping).
func (r *Registry) RegisterMultiOutput(f *Functional, t *datapoints.Type, kernel Kernel) error {
	if !r.Owns(f) {
		return fmt.Errorf("%w: %v is not defined in this registry", ErrInvalidFunctional, f)
	}
	if t == nil || kernel == nil {
		return fmt.Errorf("register %s: type and kernel are required", f)
	}

	if t.IsDatapoint() {
		return r.insert(f, t, WithMultiOutputWrapping(kernel), "multi-output")
	}
	return r.insert(f, t, kernel, "none")
}

// functional resolves a name or handle to a functional of this registry.
func (r *Registry) functional(functionalOrName any) (*Functional, error) {
	switch v := functionalOrName.(type) {
	case string:
		return r.Lookup(v)
	case *Functional:
		if !r.Owns(v) {
			return nil, fmt.Errorf("%w: kernels can only be registered on functionals of this registry, but got %v", ErrInvalidFunctional, v)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected a functional or its name, but got %T", ErrInvalidFunctional, functionalOrName)
	}
}

// RegisterKernel registers kernel for a custom datapoint type.
//
// functionalOrName is a *Functional of this registry or its name. t must be
// a datapoint type that is not built in: built-in types have their kernels
// registered by this module and cannot be overridden. The kernel is always
// auto-wrapped, so it works on bare tensors only.
func (r *Registry) RegisterKernel(functionalOrName any, t *datapoints.Type, kernel Kernel) error {
	f, err := r.checkPublic(functionalOrName, t)
	if err != nil {
		return err
	}
	return r.Register(f, t, kernel, true)
}

// Decorator registers a kernel and returns it unchanged.
type Decorator func(kernel Kernel) (Kernel, error)

// KernelDecorator validates functionalOrName and t like RegisterKernel and
// returns a Decorator that performs the registration.
func (r *Registry) KernelDecorator(functionalOrName any, t *datapoints.Type) (Decorator, error) {
	f, err := r.checkPublic(functionalOrName, t)
	if err != nil {
		return nil, err
	}
	return func(kernel Kernel) (Kernel, error) {
		if err := r.Register(f, t, kernel, true); err != nil {
			return nil, err
		}
		return kernel, nil
	}, nil
}

func (r *Registry) checkPublic(functionalOrName any, t *datapoints.Type) (*Functional, error) {
	f, err := r.functional(functionalOrName)
	if err != nil {
		return nil, err
	}
	if t == nil || !t.IsDatapoint() {
		return nil, fmt.Errorf("%w: kernels can only be registered for subtypes of %s, but got %v",
			ErrInvalidDatapointType, datapoints.DatapointType, t)
	}
	if datapoints.IsBuiltin(t) {
		return nil, fmt.Errorf("%w: kernels cannot be registered for the builtin datapoint types, but got %s",
			ErrInvalidDatapointType, t)
	}
	return f, nil
}

// RegisterKernel registers kernel on the default registry.
func RegisterKernel(functionalOrName any, t *datapoints.Type, kernel Kernel) error {
	return defaultRegistry.RegisterKernel(functionalOrName, t, kernel)
}

// KernelDecorator returns a Decorator for the default registry.
func KernelDecorator(functionalOrName any, t *datapoints.Type) (Decorator, error) {
	return defaultRegistry.KernelDecorator(functionalOrName, t)
}
