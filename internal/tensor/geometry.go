package tensor

import (
	"fmt"

	"github.com/born-ml/vision/internal/parallel"
)

// Geometry kernels operate on the trailing [H, W] dimensions and treat every
// leading dimension (channels, frames, batch) as a batch of planes. They copy
// whole elements byte-wise, so they work for every DataType.

// Parallelism controls how planeCopy splits planes across goroutines.
var Parallelism = parallel.DefaultConfig()

// planeCopy fills every output pixel of every plane from the source pixel
// that src maps it to. Pixels with no source (ok == false) stay zero. Planes
// are independent and may be filled concurrently.
func planeCopy(x *RawTensor, outH, outW int, src func(y, x int) (sy, sx int, ok bool)) (*RawTensor, error) {
	batch, h, w, err := x.shape.Spatial()
	if err != nil {
		return nil, err
	}

	result, err := NewRaw(x.shape.WithSpatial(outH, outW), x.dtype, x.device)
	if err != nil {
		return nil, err
	}

	size := x.dtype.Size()
	in, out := x.Data(), result.Data()
	planes := batch.NumElements()

	parallel.Planes(planes, outH*outW, func(p int) {
		inBase := p * h * w
		outBase := p * outH * outW
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				sy, sx, ok := src(oy, ox)
				if !ok {
					continue
				}
				dst := (outBase + oy*outW + ox) * size
				from := (inBase + sy*w + sx) * size
				copy(out[dst:dst+size], in[from:from+size])
			}
		}
	}, Parallelism)
	return result, nil
}

// Crop extracts the [top, top+height) x [left, left+width) window of every
// plane. Parts of the window outside the input are zero-filled.
func Crop(x *RawTensor, top, left, height, width int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Crop: input tensor is nil")
	}
	_, h, w, err := x.shape.Spatial()
	if err != nil {
		return nil, fmt.Errorf("Crop: %w", err)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("Crop: output size must be positive, got %dx%d", height, width)
	}

	result, err := planeCopy(x, height, width, func(y, xx int) (int, int, bool) {
		sy, sx := top+y, left+xx
		return sy, sx, sy >= 0 && sy < h && sx >= 0 && sx < w
	})
	if err != nil {
		return nil, fmt.Errorf("Crop: %w", err)
	}
	return result, nil
}

// HorizontalFlip mirrors every plane along the width axis.
func HorizontalFlip(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("HorizontalFlip: input tensor is nil")
	}
	_, h, w, err := x.shape.Spatial()
	if err != nil {
		return nil, fmt.Errorf("HorizontalFlip: %w", err)
	}
	return planeCopy(x, h, w, func(y, xx int) (int, int, bool) {
		return y, w - 1 - xx, true
	})
}

// VerticalFlip mirrors every plane along the height axis.
func VerticalFlip(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("VerticalFlip: input tensor is nil")
	}
	_, h, w, err := x.shape.Spatial()
	if err != nil {
		return nil, fmt.Errorf("VerticalFlip: %w", err)
	}
	return planeCopy(x, h, w, func(y, xx int) (int, int, bool) {
		return h - 1 - y, xx, true
	})
}

// ResizeNearest resizes every plane to height x width with nearest-neighbor
// sampling.
func ResizeNearest(x *RawTensor, height, width int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("ResizeNearest: input tensor is nil")
	}
	_, h, w, err := x.shape.Spatial()
	if err != nil {
		return nil, fmt.Errorf("ResizeNearest: %w", err)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("ResizeNearest: output size must be positive, got %dx%d", height, width)
	}
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("ResizeNearest: cannot sample from an empty %dx%d input", h, w)
	}
	return planeCopy(x, height, width, func(y, xx int) (int, int, bool) {
		return y * h / height, xx * w / width, true
	})
}

// Invert computes max - x element-wise, where max is 255 for uint8 and 1.0
// for floating-point tensors.
func Invert(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Invert: input tensor is nil")
	}

	var bound float64
	switch {
	case x.dtype == Uint8:
		bound = 255
	case x.dtype.IsFloat():
		bound = 1
	default:
		return nil, fmt.Errorf("Invert: unsupported dtype %s", x.dtype)
	}

	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	for i := 0; i < x.NumElements(); i++ {
		result.SetFloat64At(i, bound-x.Float64At(i))
	}
	return result, nil
}

// Scale multiplies every element by factor.
func Scale(x *RawTensor, factor float64) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Scale: input tensor is nil")
	}
	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	for i := 0; i < x.NumElements(); i++ {
		result.SetFloat64At(i, x.Float64At(i)*factor)
	}
	return result, nil
}
