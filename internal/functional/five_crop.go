package functional

import (
	"fmt"

	"github.com/born-ml/vision/internal/datapoints"
)

// FiveCropResult holds the top-left, top-right, bottom-left, bottom-right
// and center crops, in that order.
type FiveCropResult = [5]any

// TenCropResult holds the five crops of the input followed by the five crops
// of its flipped copy.
type TenCropResult = [10]any

func init() {
	for _, t := range []*datapoints.Type{datapoints.TensorType, datapoints.ImageType, datapoints.VideoType} {
		mustRegisterMultiOutput(FiveCropOp, t, fiveCrop)
		mustRegisterMultiOutput(TenCropOp, t, tenCrop)
	}
}

// FiveCrop cuts the four corners and the center of the input.
func FiveCrop(inpt any, height, width int) (FiveCropResult, error) {
	out, err := registry.Call(FiveCropOp, inpt, false, FiveCropParams{Height: height, Width: width})
	if err != nil {
		return FiveCropResult{}, err
	}
	res, ok := out.(FiveCropResult)
	if !ok {
		return FiveCropResult{}, fmt.Errorf("%s: kernel returned %T", FiveCropOp, out)
	}
	return res, nil
}

// TenCrop is FiveCrop of the input and of its horizontally (or, with
// vertical set, vertically) flipped copy.
func TenCrop(inpt any, height, width int, vertical bool) (TenCropResult, error) {
	out, err := registry.Call(TenCropOp, inpt, false, TenCropParams{Height: height, Width: width, Vertical: vertical})
	if err != nil {
		return TenCropResult{}, err
	}
	res, ok := out.(TenCropResult)
	if !ok {
		return TenCropResult{}, fmt.Errorf("%s: kernel returned %T", TenCropOp, out)
	}
	return res, nil
}

// fiveCrop receives the original input and crops it through the crop
// functional, so each part is already typed; the multi-output wrapper
// rewraps them against the input.
func fiveCrop(inpt any, args ...any) (any, error) {
	p, err := param[FiveCropParams](FiveCropOp, args)
	if err != nil {
		return nil, err
	}
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	_, h, w, err := raw.Shape().Spatial()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FiveCropOp, err)
	}
	if p.Height <= 0 || p.Width <= 0 || p.Height > h || p.Width > w {
		return nil, fmt.Errorf("%s: requested crop size %dx%d is invalid for input size %dx%d",
			FiveCropOp, p.Height, p.Width, h, w)
	}

	origins := [5][2]int{
		{0, 0},
		{0, w - p.Width},
		{h - p.Height, 0},
		{h - p.Height, w - p.Width},
		{(h - p.Height) / 2, (w - p.Width) / 2},
	}

	var res FiveCropResult
	for i, o := range origins {
		part, err := Crop(inpt, o[0], o[1], p.Height, p.Width)
		if err != nil {
			return nil, err
		}
		res[i] = part
	}
	return res, nil
}

func tenCrop(inpt any, args ...any) (any, error) {
	p, err := param[TenCropParams](TenCropOp, args)
	if err != nil {
		return nil, err
	}
	five := FiveCropParams{Height: p.Height, Width: p.Width}

	first, err := fiveCrop(inpt, five)
	if err != nil {
		return nil, err
	}
	flip := HorizontalFlip
	if p.Vertical {
		flip = VerticalFlip
	}
	flipped, err := flip(inpt)
	if err != nil {
		return nil, err
	}
	second, err := fiveCrop(flipped, five)
	if err != nil {
		return nil, err
	}

	a, b := first.(FiveCropResult), second.(FiveCropResult)
	var res TenCropResult
	copy(res[:5], a[:])
	copy(res[5:], b[:])
	return res, nil
}
