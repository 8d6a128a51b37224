package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
// Zero-sized dimensions are allowed: an empty set of boxes is [0, 4].
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Spatial splits a [..., H, W] shape into its leading batch dimensions and
// the trailing height and width.
func (s Shape) Spatial() (batch Shape, height, width int, err error) {
	if len(s) < 2 {
		return nil, 0, 0, fmt.Errorf("expected at least 2 dimensions [..., H, W], got shape %v", s)
	}
	return s[:len(s)-2], s[len(s)-2], s[len(s)-1], nil
}

// WithSpatial returns a copy of the shape with the trailing H and W replaced.
func (s Shape) WithSpatial(height, width int) Shape {
	out := s.Clone()
	out[len(out)-2] = height
	out[len(out)-1] = width
	return out
}
