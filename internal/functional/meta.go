package functional

import (
	"fmt"

	"github.com/born-ml/vision/internal/datapoints"
)

func init() {
	for _, t := range []*datapoints.Type{datapoints.TensorType, datapoints.ImageType, datapoints.VideoType, datapoints.MaskType} {
		mustRegister(GetSizeOp, t, getSizeImage, false)
	}
	mustRegister(GetSizeOp, datapoints.BoundingBoxesType, getSizeBoundingBoxes, false)
}

// GetSize returns the [height, width] of the input. For bounding boxes this
// is the canvas size.
func GetSize(inpt any) ([]int, error) {
	out, err := registry.Call(GetSizeOp, inpt, false)
	if err != nil {
		return nil, err
	}
	size, ok := out.([]int)
	if !ok {
		return nil, fmt.Errorf("%s: kernel returned %T", GetSizeOp, out)
	}
	return size, nil
}

// getSizeImage is registered without wrapping: its result is not a tensor.
func getSizeImage(inpt any, _ ...any) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	_, h, w, err := raw.Shape().Spatial()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", GetSizeOp, err)
	}
	return []int{h, w}, nil
}

func getSizeBoundingBoxes(inpt any, _ ...any) (any, error) {
	b, err := boxesInput(GetSizeOp, inpt)
	if err != nil {
		return nil, err
	}
	return []int{b.CanvasSize.Height, b.CanvasSize.Width}, nil
}
