package datapoints

import (
	"slices"

	"github.com/google/uuid"

	"github.com/born-ml/vision/internal/tensor"
)

// Constructor builds a datapoint of a concrete type from raw storage and
// the metadata fields the type declares. It must not copy raw.
type Constructor func(raw *tensor.RawTensor, meta Metadata) (Datapoint, error)

// Type describes one class in the hierarchy rooted at TensorType.
//
// Types are immutable after construction. Their ancestry (most specific
// first) is computed once by NewType and shared by every lookup.
type Type struct {
	id        uuid.UUID
	name      string
	parent    *Type
	fields    []string
	ctor      Constructor
	datapoint bool
	mro       []*Type
}

// TypeOption configures a Type created by NewType.
type TypeOption func(*Type)

// WithFields declares metadata fields that are copied when a value of the
// type is rewrapped. Fields of the parent are always inherited.
func WithFields(fields ...string) TypeOption {
	return func(t *Type) {
		for _, f := range fields {
			if !slices.Contains(t.fields, f) {
				t.fields = append(t.fields, f)
			}
		}
	}
}

// WithConstructor sets the function used to rebuild values of the type.
// Datapoint types without one get a Generic constructor.
func WithConstructor(ctor Constructor) TypeOption {
	return func(t *Type) {
		t.ctor = ctor
	}
}

// NewType creates a subtype of parent.
// Panics if parent is nil: every type descends from TensorType.
func NewType(name string, parent *Type, opts ...TypeOption) *Type {
	if parent == nil {
		panic("datapoints: NewType requires a parent type")
	}

	t := &Type{
		id:        uuid.New(),
		name:      name,
		parent:    parent,
		fields:    slices.Clone(parent.fields),
		datapoint: parent.datapoint,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.ctor == nil && t.datapoint {
		t.ctor = genericConstructor(t)
	}

	t.mro = append([]*Type{t}, parent.mro...)
	return t
}

func newRootType(name string) *Type {
	t := &Type{id: uuid.New(), name: name}
	t.mro = []*Type{t}
	return t
}

func newMarkerType(name string, parent *Type) *Type {
	t := &Type{
		id:        uuid.New(),
		name:      name,
		parent:    parent,
		datapoint: true,
	}
	t.mro = append([]*Type{t}, parent.mro...)
	return t
}

// ID returns the unique identity of the type.
func (t *Type) ID() uuid.UUID { return t.id }

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Type) String() string { return t.name }

// Parent returns the direct parent, or nil for TensorType.
func (t *Type) Parent() *Type { return t.parent }

// Fields returns the metadata field names copied on rewrap.
func (t *Type) Fields() []string { return slices.Clone(t.fields) }

// MRO returns the ancestry of t, most specific first, ending in TensorType.
// The returned slice must not be modified.
func (t *Type) MRO() []*Type { return t.mro }

// IsDatapoint reports whether t is DatapointType or one of its subtypes.
func (t *Type) IsDatapoint() bool { return t.datapoint }

// IsSubtypeOf reports whether t is other or descends from it.
func (t *Type) IsSubtypeOf(other *Type) bool {
	return slices.Contains(t.mro, other)
}

// Constructible reports whether values of the type can be built from raw
// storage.
func (t *Type) Constructible() bool { return t.ctor != nil }

// New builds a value of the type over raw, copying only the declared fields
// from meta. raw is not copied.
func (t *Type) New(raw *tensor.RawTensor, meta Metadata) (Datapoint, error) {
	if t.ctor == nil {
		return nil, notConstructible(t)
	}
	if raw == nil {
		return nil, ErrNotATensor
	}

	own := make(Metadata, len(t.fields))
	for _, f := range t.fields {
		if v, ok := meta[f]; ok {
			own[f] = v
		}
	}
	return t.ctor(raw, own)
}
