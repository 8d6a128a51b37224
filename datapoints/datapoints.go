// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package datapoints provides the domain types that kernels dispatch on.
//
// Example:
//
//	raw, _ := tensor.FromSlice(pixels, tensor.Shape{3, 480, 640})
//	img, _ := datapoints.NewImage(raw)
//	boxes, _ := datapoints.NewBoundingBoxes(coords, datapoints.XYXY,
//	    datapoints.CanvasSize{Height: 480, Width: 640})
//
// Custom types extend the hierarchy with NewType and get kernels through
// functional.RegisterKernel.
package datapoints

import (
	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

// Type aliases for public API.
type (
	Type              = datapoints.Type
	TypeOption        = datapoints.TypeOption
	Constructor       = datapoints.Constructor
	Datapoint         = datapoints.Datapoint
	Metadata          = datapoints.Metadata
	Image             = datapoints.Image
	Video             = datapoints.Video
	Mask              = datapoints.Mask
	BoundingBoxes     = datapoints.BoundingBoxes
	BoundingBoxFormat = datapoints.BoundingBoxFormat
	CanvasSize        = datapoints.CanvasSize
	Generic           = datapoints.Generic
)

// Bounding box formats.
const (
	XYXY   = datapoints.XYXY
	XYWH   = datapoints.XYWH
	CXCYWH = datapoints.CXCYWH
)

// Built-in types.
var (
	TensorType        = datapoints.TensorType
	DatapointType     = datapoints.DatapointType
	ImageType         = datapoints.ImageType
	VideoType         = datapoints.VideoType
	MaskType          = datapoints.MaskType
	BoundingBoxesType = datapoints.BoundingBoxesType
)

// Errors.
var (
	ErrNotATensor       = datapoints.ErrNotATensor
	ErrNotConstructible = datapoints.ErrNotConstructible
	ErrMissingMetadata  = datapoints.ErrMissingMetadata
)

// Metadata field names of BoundingBoxes.
const (
	FieldFormat     = datapoints.FieldFormat
	FieldCanvasSize = datapoints.FieldCanvasSize
)

// NewType creates a datapoint or tensor subtype of parent.
func NewType(name string, parent *Type, opts ...TypeOption) *Type {
	return datapoints.NewType(name, parent, opts...)
}

// WithFields declares metadata fields copied on rewrap.
func WithFields(fields ...string) TypeOption { return datapoints.WithFields(fields...) }

// WithConstructor sets the constructor of a type.
func WithConstructor(ctor Constructor) TypeOption { return datapoints.WithConstructor(ctor) }

// NewImage wraps raw as an image without copying.
func NewImage(raw *tensor.RawTensor) (*Image, error) { return datapoints.NewImage(raw) }

// NewVideo wraps raw as a video without copying.
func NewVideo(raw *tensor.RawTensor) (*Video, error) { return datapoints.NewVideo(raw) }

// NewMask wraps raw as a mask without copying.
func NewMask(raw *tensor.RawTensor) (*Mask, error) { return datapoints.NewMask(raw) }

// NewBoundingBoxes wraps raw as bounding boxes without copying.
func NewBoundingBoxes(raw *tensor.RawTensor, format BoundingBoxFormat, canvas CanvasSize) (*BoundingBoxes, error) {
	return datapoints.NewBoundingBoxes(raw, format, canvas)
}

// NewGeneric builds a datapoint of a custom type.
func NewGeneric(t *Type, raw *tensor.RawTensor, meta Metadata) (*Generic, error) {
	return datapoints.NewGeneric(t, raw, meta)
}

// IsPureTensor reports whether v is a plain tensor rather than a datapoint.
func IsPureTensor(v any) bool { return datapoints.IsPureTensor(v) }

// Wrap re-attaches the type and metadata of like to value.
func Wrap(value any, like Datapoint) (any, error) { return datapoints.Wrap(value, like) }

// BoundingBoxesOf returns a bounding box view of v, which may be a subtype
// of BoundingBoxes.
func BoundingBoxesOf(v any) (*BoundingBoxes, error) { return datapoints.BoundingBoxesOf(v) }

// IsBuiltin reports whether t is a built-in datapoint type.
func IsBuiltin(t *Type) bool { return datapoints.IsBuiltin(t) }
