package datapoints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/vision/internal/tensor"
)

// Metadata field names of the built-in types.
const (
	FieldFormat     = "format"
	FieldCanvasSize = "canvas_size"
)

var (
	// TensorType is the type of plain tensors, the root of the hierarchy.
	TensorType = newRootType("Tensor")

	// DatapointType is the abstract marker every datapoint type descends from.
	DatapointType = newMarkerType("Datapoint", TensorType)

	// ImageType is the type of *Image values.
	ImageType = NewType("Image", DatapointType, WithConstructor(func(raw *tensor.RawTensor, _ Metadata) (Datapoint, error) {
		return NewImage(raw)
	}))

	// VideoType is the type of *Video values.
	VideoType = NewType("Video", DatapointType, WithConstructor(func(raw *tensor.RawTensor, _ Metadata) (Datapoint, error) {
		return NewVideo(raw)
	}))

	// MaskType is the type of *Mask values.
	MaskType = NewType("Mask", DatapointType, WithConstructor(func(raw *tensor.RawTensor, _ Metadata) (Datapoint, error) {
		return NewMask(raw)
	}))

	// BoundingBoxesType is the type of *BoundingBoxes values.
	BoundingBoxesType = NewType("BoundingBoxes", DatapointType,
		WithFields(FieldFormat, FieldCanvasSize),
		WithConstructor(boundingBoxesFromMetadata),
	)
)

// builtinTypes is fixed at package initialization and never modified.
var builtinTypes = []*Type{DatapointType, ImageType, VideoType, BoundingBoxesType, MaskType}

// IsBuiltin reports whether t is one of the datapoint types defined by this
// package, including the DatapointType marker.
func IsBuiltin(t *Type) bool {
	return slices.Contains(builtinTypes, t)
}

// BuiltinTypes returns the built-in datapoint types.
func BuiltinTypes() []*Type {
	return slices.Clone(builtinTypes)
}

// LookupType finds TensorType or a built-in datapoint type by name.
func LookupType(name string) (*Type, bool) {
	if strings.EqualFold(name, TensorType.name) {
		return TensorType, true
	}
	for _, t := range builtinTypes {
		if strings.EqualFold(name, t.name) {
			return t, true
		}
	}
	return nil, false
}

func checkSpatial(kind string, raw *tensor.RawTensor) error {
	if raw == nil {
		return ErrNotATensor
	}
	if len(raw.Shape()) < 2 {
		return fmt.Errorf("%s requires at least 2 dimensions [..., H, W], got shape %v", kind, raw.Shape())
	}
	return nil
}

// Image is a [..., C, H, W] tensor of pixel data.
type Image struct {
	raw *tensor.RawTensor
}

// NewImage wraps raw as an image without copying.
func NewImage(raw *tensor.RawTensor) (*Image, error) {
	if err := checkSpatial("image", raw); err != nil {
		return nil, err
	}
	return &Image{raw: raw}, nil
}

// Type implements Datapoint.
func (*Image) Type() *Type { return ImageType }

// AsTensor implements Datapoint.
func (i *Image) AsTensor() *tensor.RawTensor { return i.raw }

// Metadata implements Datapoint. Images carry no metadata.
func (*Image) Metadata() Metadata { return nil }

// String implements fmt.Stringer.
func (i *Image) String() string { return fmt.Sprintf("Image(%s)", i.raw) }

// Video is a [..., T, C, H, W] tensor of frames.
type Video struct {
	raw *tensor.RawTensor
}

// NewVideo wraps raw as a video without copying.
func NewVideo(raw *tensor.RawTensor) (*Video, error) {
	if err := checkSpatial("video", raw); err != nil {
		return nil, err
	}
	return &Video{raw: raw}, nil
}

// Type implements Datapoint.
func (*Video) Type() *Type { return VideoType }

// AsTensor implements Datapoint.
func (v *Video) AsTensor() *tensor.RawTensor { return v.raw }

// Metadata implements Datapoint. Videos carry no metadata.
func (*Video) Metadata() Metadata { return nil }

// String implements fmt.Stringer.
func (v *Video) String() string { return fmt.Sprintf("Video(%s)", v.raw) }

// Mask is a [..., H, W] segmentation or detection mask.
type Mask struct {
	raw *tensor.RawTensor
}

// NewMask wraps raw as a mask without copying.
func NewMask(raw *tensor.RawTensor) (*Mask, error) {
	if err := checkSpatial("mask", raw); err != nil {
		return nil, err
	}
	return &Mask{raw: raw}, nil
}

// Type implements Datapoint.
func (*Mask) Type() *Type { return MaskType }

// AsTensor implements Datapoint.
func (m *Mask) AsTensor() *tensor.RawTensor { return m.raw }

// Metadata implements Datapoint. Masks carry no metadata.
func (*Mask) Metadata() Metadata { return nil }

// String implements fmt.Stringer.
func (m *Mask) String() string { return fmt.Sprintf("Mask(%s)", m.raw) }
