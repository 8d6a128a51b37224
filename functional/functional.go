// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional exposes the built-in functionals and the extension point
// for custom datapoint types.
//
// Example:
//
//	var CaptionType = datapoints.NewType("Caption", datapoints.DatapointType)
//
//	func init() {
//	    // The kernel sees a bare tensor; the result is rewrapped as a Caption.
//	    err := functional.RegisterKernel("horizontal_flip", CaptionType, flipCaption)
//	    ...
//	}
package functional

import (
	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/dispatch"
	"github.com/born-ml/vision/internal/functional"
)

// Type aliases for public API.
type (
	Kernel              = dispatch.Kernel
	Functional          = dispatch.Functional
	Decorator           = dispatch.Decorator
	CropParams          = functional.CropParams
	ResizeParams        = functional.ResizeParams
	FiveCropParams      = functional.FiveCropParams
	TenCropParams       = functional.TenCropParams
	ConvertFormatParams = functional.ConvertFormatParams
	FiveCropResult      = functional.FiveCropResult
	TenCropResult       = functional.TenCropResult
)

// Functional handles.
var (
	HorizontalFlipOp           = functional.HorizontalFlipOp
	VerticalFlipOp             = functional.VerticalFlipOp
	CropOp                     = functional.CropOp
	ResizeOp                   = functional.ResizeOp
	FiveCropOp                 = functional.FiveCropOp
	TenCropOp                  = functional.TenCropOp
	InvertOp                   = functional.InvertOp
	GetSizeOp                  = functional.GetSizeOp
	ConvertBoundingBoxFormatOp = functional.ConvertBoundingBoxFormatOp
	ClampBoundingBoxesOp       = functional.ClampBoundingBoxesOp
)

// Dispatch errors.
var (
	ErrDuplicateKernel         = dispatch.ErrDuplicateKernel
	ErrUnknownFunctional       = dispatch.ErrUnknownFunctional
	ErrInvalidFunctional       = dispatch.ErrInvalidFunctional
	ErrInvalidDatapointType    = dispatch.ErrInvalidDatapointType
	ErrFunctionalNotRegistered = dispatch.ErrFunctionalNotRegistered
	ErrNoKernel                = dispatch.ErrNoKernel
)

// Functionals.
var (
	HorizontalFlip           = functional.HorizontalFlip
	VerticalFlip             = functional.VerticalFlip
	Crop                     = functional.Crop
	CenterCrop               = functional.CenterCrop
	Resize                   = functional.Resize
	FiveCrop                 = functional.FiveCrop
	TenCrop                  = functional.TenCrop
	Invert                   = functional.Invert
	GetSize                  = functional.GetSize
	ConvertBoundingBoxFormat = functional.ConvertBoundingBoxFormat
	ClampBoundingBoxes       = functional.ClampBoundingBoxes
)

// RegisterKernel registers a kernel of a built-in functional, given by
// handle or name, for a custom datapoint type.
func RegisterKernel(functionalOrName any, t *datapoints.Type, kernel Kernel) error {
	return dispatch.RegisterKernel(functionalOrName, t, kernel)
}

// KernelDecorator validates the arguments of RegisterKernel and returns a
// Decorator that performs the registration.
func KernelDecorator(functionalOrName any, t *datapoints.Type) (Decorator, error) {
	return dispatch.KernelDecorator(functionalOrName, t)
}

// ResolveKernel returns the kernel f dispatches to for inputs of type t.
func ResolveKernel(f *Functional, t *datapoints.Type, allowPassthrough bool) (Kernel, error) {
	return dispatch.ResolveKernel(f, t, allowPassthrough)
}
