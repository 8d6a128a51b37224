package dispatch

import (
	"fmt"
	"slices"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/born-ml/vision/internal/datapoints"
)

// Kernel is a type-specific implementation of a functional.
//
// inpt is a *tensor.RawTensor or a datapoints.Datapoint; args are the
// functional's parameters.
type Kernel func(inpt any, args ...any) (any, error)

// Functional identifies one logical operation (crop, resize, ...).
// Handles are created by Registry.Define and compared by identity.
type Functional struct {
	name     string
	registry *Registry
}

// Name returns the functional's name.
func (f *Functional) Name() string { return f.name }

// String implements fmt.Stringer.
func (f *Functional) String() string { return f.name }

// Registry maps functionals to their per-type kernels.
//
// Registration is not synchronized: register during initialization or from a
// single goroutine. Once registration is done, lookups are safe for
// concurrent use.
type Registry struct {
	functionals map[string]*Functional
	kernels     map[*Functional]map[*datapoints.Type]Kernel
	resolved    *gocache.Cache
	logger      *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		functionals: make(map[string]*Functional),
		kernels:     make(map[*Functional]map[*datapoints.Type]Kernel),
		resolved:    gocache.New(gocache.NoExpiration, 0),
		logger:      zap.NewNop(),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that built-in kernels register
// into.
func Default() *Registry {
	return defaultRegistry
}

// SetLogger replaces the registry's logger. A nil logger disables logging.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

// Define adds a functional to the registry's namespace.
// Panics if the name is already taken: functionals are defined once, at
// package initialization.
func (r *Registry) Define(name string) *Functional {
	if _, ok := r.functionals[name]; ok {
		panic(fmt.Sprintf("dispatch: functional %q already defined", name))
	}
	f := &Functional{name: name, registry: r}
	r.functionals[name] = f
	return f
}

// Lookup finds a functional by name.
func (r *Registry) Lookup(name string) (*Functional, error) {
	f, ok := r.functionals[name]
	if !ok {
		return nil, fmt.Errorf("%w: could not find functional with name %q", ErrUnknownFunctional, name)
	}
	return f, nil
}

// Owns reports whether f belongs to this registry's namespace.
func (r *Registry) Owns(f *Functional) bool {
	return f != nil && f.registry == r && r.functionals[f.name] == f
}

// Functionals returns every defined functional, sorted by name.
func (r *Registry) Functionals() []*Functional {
	out := make([]*Functional, 0, len(r.functionals))
	for _, f := range r.functionals {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b *Functional) int { return strings.Compare(a.name, b.name) })
	return out
}

// RegisteredTypes returns the types with a kernel for f, sorted by name.
func (r *Registry) RegisteredTypes(f *Functional) []*datapoints.Type {
	bucket := r.kernels[f]
	out := make([]*datapoints.Type, 0, len(bucket))
	for t := range bucket {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *datapoints.Type) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// bucket returns the kernels of f, creating the bucket if needed.
func (r *Registry) bucket(f *Functional) map[*datapoints.Type]Kernel {
	b, ok := r.kernels[f]
	if !ok {
		b = make(map[*datapoints.Type]Kernel)
		r.kernels[f] = b
	}
	return b
}

// insert stores kernel for (f, t), failing on duplicates.
func (r *Registry) insert(f *Functional, t *datapoints.Type, kernel Kernel, how string) error {
	b := r.bucket(f)
	if _, ok := b[t]; ok {
		return fmt.Errorf("%w: functional %s already has a kernel registered for type %s", ErrDuplicateKernel, f, t)
	}
	b[t] = kernel
	// A new entry can change which ancestor wins for subtypes.
	r.resolved.Flush()

	r.logger.Debug("kernel registered",
		zap.String("functional", f.name),
		zap.String("type", t.Name()),
		zap.String("wrapping", how))
	return nil
}
