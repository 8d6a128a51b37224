package functional

import (
	"fmt"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

func init() {
	for _, t := range []*datapoints.Type{datapoints.TensorType, datapoints.ImageType, datapoints.VideoType, datapoints.MaskType} {
		mustRegister(HorizontalFlipOp, t, horizontalFlipImage, true)
		mustRegister(VerticalFlipOp, t, verticalFlipImage, true)
		mustRegister(CropOp, t, cropImage, true)
		mustRegister(ResizeOp, t, resizeImage, true)
	}

	mustRegister(HorizontalFlipOp, datapoints.BoundingBoxesType, horizontalFlipBoundingBoxes, false)
	mustRegister(VerticalFlipOp, datapoints.BoundingBoxesType, verticalFlipBoundingBoxes, false)
	mustRegister(CropOp, datapoints.BoundingBoxesType, cropBoundingBoxes, false)
	mustRegister(ResizeOp, datapoints.BoundingBoxesType, resizeBoundingBoxes, false)
}

// HorizontalFlip mirrors the input left to right.
func HorizontalFlip(inpt any) (any, error) {
	return registry.Call(HorizontalFlipOp, inpt, false)
}

// VerticalFlip mirrors the input top to bottom.
func VerticalFlip(inpt any) (any, error) {
	return registry.Call(VerticalFlipOp, inpt, false)
}

// Crop cuts the window starting at (top, left) of the given size.
// Image-like inputs are zero-padded where the window leaves the input;
// bounding boxes are translated and clamped to the new canvas.
func Crop(inpt any, top, left, height, width int) (any, error) {
	return registry.Call(CropOp, inpt, false, CropParams{Top: top, Left: left, Height: height, Width: width})
}

// Resize scales the input to height x width (nearest neighbor for pixels).
func Resize(inpt any, height, width int) (any, error) {
	return registry.Call(ResizeOp, inpt, false, ResizeParams{Height: height, Width: width})
}

// CenterCrop crops a height x width window from the middle of the input.
func CenterCrop(inpt any, height, width int) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CropOp, err)
	}

	var h, w int
	if t, _ := datapoints.TypeOf(inpt); t.IsSubtypeOf(datapoints.BoundingBoxesType) {
		b, err := boxesInput(CropOp, inpt)
		if err != nil {
			return nil, err
		}
		h, w = b.CanvasSize.Height, b.CanvasSize.Width
	} else if _, h, w, err = raw.Shape().Spatial(); err != nil {
		return nil, fmt.Errorf("%s: %w", CropOp, err)
	}
	return Crop(inpt, (h-height)/2, (w-width)/2, height, width)
}

// The image kernels below receive bare tensors: the datapoint types are
// re-attached by the dispatch wrapper.

func horizontalFlipImage(inpt any, _ ...any) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.HorizontalFlip(raw)
}

func verticalFlipImage(inpt any, _ ...any) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.VerticalFlip(raw)
}

func cropImage(inpt any, args ...any) (any, error) {
	p, err := param[CropParams](CropOp, args)
	if err != nil {
		return nil, err
	}
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.Crop(raw, p.Top, p.Left, p.Height, p.Width)
}

func resizeImage(inpt any, args ...any) (any, error) {
	p, err := param[ResizeParams](ResizeOp, args)
	if err != nil {
		return nil, err
	}
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.ResizeNearest(raw, p.Height, p.Width)
}
