package dispatch

import (
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/born-ml/vision/internal/datapoints"
)

// Resolution is the outcome of resolving a functional for an input type.
type Resolution struct {
	Kernel Kernel
	// Matched is the ancestor whose kernel was selected; nil for passthrough.
	Matched *datapoints.Type
	// Passthrough is true when no kernel matched and the identity kernel was
	// returned instead.
	Passthrough bool
}

// passthrough returns its input unchanged.
func passthrough(inpt any, _ ...any) (any, error) {
	return inpt, nil
}

// Resolve finds the kernel of f for inputs of type t.
//
// The ancestry of t is walked most specific first and the first registered
// kernel wins. The walk stops at datapoints.DatapointType, so a custom
// datapoint type never falls back to the plain tensor kernel. Without a match,
// the identity kernel is returned if allowPassthrough is set.
func (r *Registry) Resolve(f *Functional, t *datapoints.Type, allowPassthrough bool) (Resolution, error) {
	if f == nil {
		return Resolution{}, fmt.Errorf("%w: nil functional", ErrInvalidFunctional)
	}
	bucket := r.kernels[f]
	if len(bucket) == 0 {
		return Resolution{}, fmt.Errorf("%w: no kernel registered for functional %s", ErrFunctionalNotRegistered, f)
	}
	if t == nil {
		return Resolution{}, fmt.Errorf("%w: functional %s got a nil input type", ErrNoKernel, f)
	}

	key := f.name + "/" + t.ID().String()
	if cached, ok := r.resolved.Get(key); ok {
		return cached.(Resolution), nil
	}

	for _, cls := range t.MRO() {
		if kernel, ok := bucket[cls]; ok {
			res := Resolution{Kernel: kernel, Matched: cls}
			r.resolved.Set(key, res, gocache.NoExpiration)
			return res, nil
		}
		if cls == datapoints.DatapointType {
			break
		}
	}

	if allowPassthrough {
		return Resolution{Kernel: passthrough, Passthrough: true}, nil
	}

	names := make([]string, 0, len(bucket))
	for _, registered := range r.RegisteredTypes(f) {
		names = append(names, registered.Name())
	}
	return Resolution{}, fmt.Errorf("%w: functional %s supports inputs of type [%s], but got %s instead",
		ErrNoKernel, f, strings.Join(names, ", "), t)
}

// ResolveKernel returns the kernel selected by Resolve.
func (r *Registry) ResolveKernel(f *Functional, t *datapoints.Type, allowPassthrough bool) (Kernel, error) {
	res, err := r.Resolve(f, t, allowPassthrough)
	if err != nil {
		return nil, err
	}
	return res.Kernel, nil
}

// Call resolves the kernel of f for the runtime type of inpt and invokes it.
func (r *Registry) Call(f *Functional, inpt any, allowPassthrough bool, args ...any) (any, error) {
	t, err := datapoints.TypeOf(inpt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	kernel, err := r.ResolveKernel(f, t, allowPassthrough)
	if err != nil {
		return nil, err
	}
	return kernel(inpt, args...)
}

// ResolveKernel resolves on the default registry.
func ResolveKernel(f *Functional, t *datapoints.Type, allowPassthrough bool) (Kernel, error) {
	return defaultRegistry.ResolveKernel(f, t, allowPassthrough)
}
