// Package transforms applies functionals to whole samples.
//
// A sample is a list of values such as an image, its bounding boxes and a
// label. Each tensor value is dispatched on its own type; types without a
// kernel for the functional pass through unchanged, and values that are not
// tensors (labels, strings, ...) are never touched.
package transforms

import (
	"fmt"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/dispatch"
	"github.com/born-ml/vision/internal/functional"
)

// Transform transforms every value of a sample.
type Transform interface {
	Apply(sample ...any) ([]any, error)
}

// Compose applies transforms in order.
type Compose []Transform

// Apply implements Transform.
func (c Compose) Apply(sample ...any) ([]any, error) {
	out := sample
	for i, t := range c {
		var err error
		if out, err = t.Apply(out...); err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
	}
	return out, nil
}

// kernelTransform calls one functional with fixed arguments.
type kernelTransform struct {
	registry *dispatch.Registry
	op       *dispatch.Functional
	args     []any
}

// Apply implements Transform.
func (k *kernelTransform) Apply(sample ...any) ([]any, error) {
	pure := pureTensorTarget(sample)

	out := make([]any, len(sample))
	for i, v := range sample {
		if !needsTransform(v, i == pure) {
			out[i] = v
			continue
		}
		res, err := k.registry.Call(k.op, v, true, k.args...)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// pureTensorTarget returns the index of the plain tensor that stands in for
// the image: the first one, and only if the sample has no image or video.
func pureTensorTarget(sample []any) int {
	first := -1
	for i, v := range sample {
		if dp, ok := v.(datapoints.Datapoint); ok {
			if t := dp.Type(); t.IsSubtypeOf(datapoints.ImageType) || t.IsSubtypeOf(datapoints.VideoType) {
				return -1
			}
			continue
		}
		if first < 0 && datapoints.IsPureTensor(v) {
			first = i
		}
	}
	return first
}

func needsTransform(v any, pureTarget bool) bool {
	if _, ok := v.(datapoints.Datapoint); ok {
		return true
	}
	return datapoints.IsPureTensor(v) && pureTarget
}

func newKernelTransform(op *dispatch.Functional, args ...any) *kernelTransform {
	return &kernelTransform{registry: dispatch.Default(), op: op, args: args}
}

// HorizontalFlip flips every value left to right.
func HorizontalFlip() Transform {
	return newKernelTransform(functional.HorizontalFlipOp)
}

// VerticalFlip flips every value top to bottom.
func VerticalFlip() Transform {
	return newKernelTransform(functional.VerticalFlipOp)
}

// Crop crops every value to the given window.
func Crop(top, left, height, width int) Transform {
	return newKernelTransform(functional.CropOp, functional.CropParams{Top: top, Left: left, Height: height, Width: width})
}

// Resize resizes every value to height x width.
func Resize(height, width int) Transform {
	return newKernelTransform(functional.ResizeOp, functional.ResizeParams{Height: height, Width: width})
}

// Invert inverts images and videos; other values pass through.
func Invert() Transform {
	return newKernelTransform(functional.InvertOp)
}

// ConvertBoundingBoxFormat converts bounding boxes; other values pass through.
func ConvertBoundingBoxFormat(format datapoints.BoundingBoxFormat) Transform {
	return newKernelTransform(functional.ConvertBoundingBoxFormatOp, functional.ConvertFormatParams{Format: format})
}

// ClampBoundingBoxes clamps bounding boxes; other values pass through.
func ClampBoundingBoxes() Transform {
	return newKernelTransform(functional.ClampBoundingBoxesOp)
}
