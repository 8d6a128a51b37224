// Package functional defines the built-in functionals and registers their
// kernels for plain tensors and the built-in datapoint types.
//
// Every functional dispatches on the runtime type of its input:
//
//	flipped, err := functional.HorizontalFlip(img)        // *datapoints.Image
//	boxes, err := functional.HorizontalFlip(bboxes)       // *datapoints.BoundingBoxes
//	plain, err := functional.HorizontalFlip(img.AsTensor()) // *tensor.RawTensor
//
// Kernels for other datapoint types are added with dispatch.RegisterKernel,
// using either the exported functional handles (CropOp, ...) or their names.
package functional

import (
	"fmt"
	"maps"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/dispatch"
)

var registry = dispatch.Default()

// Functional handles of the default registry.
var (
	HorizontalFlipOp           = registry.Define("horizontal_flip")
	VerticalFlipOp             = registry.Define("vertical_flip")
	CropOp                     = registry.Define("crop")
	ResizeOp                   = registry.Define("resize")
	FiveCropOp                 = registry.Define("five_crop")
	TenCropOp                  = registry.Define("ten_crop")
	InvertOp                   = registry.Define("invert")
	GetSizeOp                  = registry.Define("get_size")
	ConvertBoundingBoxFormatOp = registry.Define("convert_bounding_box_format")
	ClampBoundingBoxesOp       = registry.Define("clamp_bounding_boxes")
)

// CropParams are the arguments of crop kernels.
type CropParams struct {
	Top, Left, Height, Width int
}

// ResizeParams are the arguments of resize kernels.
type ResizeParams struct {
	Height, Width int
}

// FiveCropParams are the arguments of five_crop kernels.
type FiveCropParams struct {
	Height, Width int
}

// TenCropParams are the arguments of ten_crop kernels. Vertical selects the
// flip applied before the second set of five crops.
type TenCropParams struct {
	Height, Width int
	Vertical      bool
}

// ConvertFormatParams are the arguments of convert_bounding_box_format kernels.
type ConvertFormatParams struct {
	Format datapoints.BoundingBoxFormat
}

// mustRegister panics on error: built-in registrations are fixed at compile
// time, so a failure is a programming error.
func mustRegister(f *dispatch.Functional, t *datapoints.Type, kernel dispatch.Kernel, autoWrap bool) {
	if err := registry.Register(f, t, kernel, autoWrap); err != nil {
		panic(err)
	}
}

func mustRegisterMultiOutput(f *dispatch.Functional, t *datapoints.Type, kernel dispatch.Kernel) {
	if err := registry.RegisterMultiOutput(f, t, kernel); err != nil {
		panic(err)
	}
}

// param extracts the single parameter struct passed to a kernel.
func param[T any](f *dispatch.Functional, args []any) (T, error) {
	var zero T
	if len(args) != 1 {
		return zero, fmt.Errorf("%s: expected 1 argument, got %d", f, len(args))
	}
	p, ok := args[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s: expected argument of type %T, got %T", f, zero, args[0])
	}
	return p, nil
}

// boxesInput returns the bounding box view of the input of a bounding box
// kernel. Subtypes of BoundingBoxes are accepted through their metadata.
func boxesInput(f *dispatch.Functional, inpt any) (*datapoints.BoundingBoxes, error) {
	b, err := datapoints.BoundingBoxesOf(inpt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	return b, nil
}

// keepBoxesType rebuilds out as the type of inpt when inpt is a subtype of
// BoundingBoxes. Format and canvas size come from out, every other declared
// field from inpt.
func keepBoxesType(inpt any, out *datapoints.BoundingBoxes) (any, error) {
	like, ok := inpt.(datapoints.Datapoint)
	if !ok || like.Type() == datapoints.BoundingBoxesType {
		return out, nil
	}
	meta := make(datapoints.Metadata)
	maps.Copy(meta, like.Metadata())
	maps.Copy(meta, out.Metadata())
	return like.Type().New(out.AsTensor(), meta)
}
