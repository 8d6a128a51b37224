// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the plain multi-dimensional array that datapoints
// are built on.
//
// Example:
//
//	raw, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
//	data := tensor.Values[float32](raw) // zero-copy view
//	view := raw.View()                  // shares the buffer
package tensor

import (
	"github.com/born-ml/vision/internal/tensor"
)

// RawTensor is the plain tensor. It carries no domain type.
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 224, 224} is a 3-channel 224x224 image.
type Shape = tensor.Shape

// Element is a constraint for supported element types.
type Element = tensor.Element

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU  Device = tensor.CPU
	CUDA Device = tensor.CUDA
)

// NewRaw allocates a zeroed tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a CPU tensor holding a copy of data.
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Values returns a typed zero-copy view of the tensor's data.
func Values[T Element](r *RawTensor) []T {
	return tensor.Values[T](r)
}
