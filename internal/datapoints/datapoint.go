package datapoints

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/born-ml/vision/internal/tensor"
)

var (
	// ErrNotATensor is returned when a value is neither a plain tensor nor a
	// datapoint.
	ErrNotATensor = errors.New("value is not a tensor")

	// ErrNotConstructible is returned when rewrapping into an abstract type.
	ErrNotConstructible = errors.New("type cannot be constructed")

	// ErrMissingMetadata is returned when a constructor lacks a required field.
	ErrMissingMetadata = errors.New("missing metadata field")
)

func notConstructible(t *Type) error {
	return fmt.Errorf("%w: %s", ErrNotConstructible, t)
}

// Metadata holds the named auxiliary fields of a datapoint, such as a
// bounding box format or canvas size. It is treated as read-only.
type Metadata map[string]any

// Datapoint is a tensor tagged with a domain type and its metadata.
type Datapoint interface {
	// Type returns the concrete datapoint type.
	Type() *Type
	// AsTensor returns the bare array backing the datapoint, without copying.
	AsTensor() *tensor.RawTensor
	// Metadata returns the datapoint's auxiliary fields.
	Metadata() Metadata
}

// IsPureTensor reports whether v is a plain tensor rather than a datapoint.
func IsPureTensor(v any) bool {
	if _, ok := v.(Datapoint); ok {
		return false
	}
	raw, ok := v.(*tensor.RawTensor)
	return ok && raw != nil
}

// nilDatapoint reports whether d is a typed nil pointer or has no storage.
func nilDatapoint(d Datapoint) bool {
	if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	return d.AsTensor() == nil
}

// TypeOf returns the runtime type used for kernel dispatch.
func TypeOf(v any) (*Type, error) {
	switch x := v.(type) {
	case Datapoint:
		if nilDatapoint(x) {
			return nil, fmt.Errorf("%w: nil %T", ErrNotATensor, v)
		}
		return x.Type(), nil
	case *tensor.RawTensor:
		if x == nil {
			return nil, ErrNotATensor
		}
		return TensorType, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotATensor, v)
	}
}

// StorageOf returns the bare array of a plain tensor or datapoint.
func StorageOf(v any) (*tensor.RawTensor, error) {
	switch x := v.(type) {
	case Datapoint:
		if nilDatapoint(x) {
			return nil, fmt.Errorf("%w: nil %T", ErrNotATensor, v)
		}
		return x.AsTensor(), nil
	case *tensor.RawTensor:
		if x == nil {
			return nil, ErrNotATensor
		}
		return x, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotATensor, v)
	}
}

// Generic is the datapoint used for custom types that do not supply their
// own constructor. It stores the metadata as given.
type Generic struct {
	typ  *Type
	raw  *tensor.RawTensor
	meta Metadata
}

// NewGeneric builds a Generic datapoint of type t over raw.
func NewGeneric(t *Type, raw *tensor.RawTensor, meta Metadata) (*Generic, error) {
	if !t.IsDatapoint() {
		return nil, fmt.Errorf("%s is not a datapoint type", t)
	}
	if raw == nil {
		return nil, ErrNotATensor
	}
	return &Generic{typ: t, raw: raw, meta: maps.Clone(meta)}, nil
}

func genericConstructor(t *Type) Constructor {
	return func(raw *tensor.RawTensor, meta Metadata) (Datapoint, error) {
		return NewGeneric(t, raw, meta)
	}
}

// Type implements Datapoint.
func (g *Generic) Type() *Type { return g.typ }

// AsTensor implements Datapoint.
func (g *Generic) AsTensor() *tensor.RawTensor { return g.raw }

// Metadata implements Datapoint.
func (g *Generic) Metadata() Metadata { return g.meta }

// String implements fmt.Stringer.
func (g *Generic) String() string {
	return fmt.Sprintf("%s(%s)", g.typ, g.raw)
}
