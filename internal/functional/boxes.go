package functional

import (
	"fmt"
	"math"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

func init() {
	mustRegister(ConvertBoundingBoxFormatOp, datapoints.BoundingBoxesType, convertBoundingBoxFormat, false)
	mustRegister(ClampBoundingBoxesOp, datapoints.BoundingBoxesType, clampBoundingBoxes, false)
}

// ConvertBoundingBoxFormat rewrites boxes in another coordinate format.
func ConvertBoundingBoxFormat(inpt any, format datapoints.BoundingBoxFormat) (any, error) {
	return registry.Call(ConvertBoundingBoxFormatOp, inpt, false, ConvertFormatParams{Format: format})
}

// ClampBoundingBoxes clips boxes to their canvas.
func ClampBoundingBoxes(inpt any) (any, error) {
	return registry.Call(ClampBoundingBoxesOp, inpt, false)
}

// box is one bounding box in XYXY coordinates.
type box struct {
	x1, y1, x2, y2 float64
}

func toXYXY(format datapoints.BoundingBoxFormat, a, b, c, d float64) box {
	switch format {
	case datapoints.XYWH:
		return box{a, b, a + c, b + d}
	case datapoints.CXCYWH:
		return box{a - c/2, b - d/2, a + c/2, b + d/2}
	default:
		return box{a, b, c, d}
	}
}

func (bx box) in(format datapoints.BoundingBoxFormat) [4]float64 {
	switch format {
	case datapoints.XYWH:
		return [4]float64{bx.x1, bx.y1, bx.x2 - bx.x1, bx.y2 - bx.y1}
	case datapoints.CXCYWH:
		return [4]float64{(bx.x1 + bx.x2) / 2, (bx.y1 + bx.y2) / 2, bx.x2 - bx.x1, bx.y2 - bx.y1}
	default:
		return [4]float64{bx.x1, bx.y1, bx.x2, bx.y2}
	}
}

func (bx box) clamp(canvas datapoints.CanvasSize) box {
	w, h := float64(canvas.Width), float64(canvas.Height)
	return box{
		x1: math.Min(math.Max(bx.x1, 0), w),
		y1: math.Min(math.Max(bx.y1, 0), h),
		x2: math.Min(math.Max(bx.x2, 0), w),
		y2: math.Min(math.Max(bx.y2, 0), h),
	}
}

// mapBoxes applies fn to every box of b in XYXY space and builds new
// bounding boxes with the given format and canvas, of the same type as inpt.
// The input is not modified.
func mapBoxes(inpt any, b *datapoints.BoundingBoxes, format datapoints.BoundingBoxFormat, canvas datapoints.CanvasSize,
	fn func(box) box) (any, error) {
	src := b.AsTensor()
	out, err := tensor.NewRaw(src.Shape(), src.DType(), src.Device())
	if err != nil {
		return nil, err
	}

	n := src.Shape()[0]
	for i := 0; i < n; i++ {
		o := i * 4
		bx := toXYXY(b.Format, src.Float64At(o), src.Float64At(o+1), src.Float64At(o+2), src.Float64At(o+3))
		for j, v := range fn(bx).in(format) {
			out.SetFloat64At(o+j, v)
		}
	}
	result, err := datapoints.NewBoundingBoxes(out, format, canvas)
	if err != nil {
		return nil, err
	}
	return keepBoxesType(inpt, result)
}

func horizontalFlipBoundingBoxes(inpt any, _ ...any) (any, error) {
	b, err := boxesInput(HorizontalFlipOp, inpt)
	if err != nil {
		return nil, err
	}
	w := float64(b.CanvasSize.Width)
	return mapBoxes(inpt, b, b.Format, b.CanvasSize, func(bx box) box {
		return box{w - bx.x2, bx.y1, w - bx.x1, bx.y2}
	})
}

func verticalFlipBoundingBoxes(inpt any, _ ...any) (any, error) {
	b, err := boxesInput(VerticalFlipOp, inpt)
	if err != nil {
		return nil, err
	}
	h := float64(b.CanvasSize.Height)
	return mapBoxes(inpt, b, b.Format, b.CanvasSize, func(bx box) box {
		return box{bx.x1, h - bx.y2, bx.x2, h - bx.y1}
	})
}

func cropBoundingBoxes(inpt any, args ...any) (any, error) {
	p, err := param[CropParams](CropOp, args)
	if err != nil {
		return nil, err
	}
	b, err := boxesInput(CropOp, inpt)
	if err != nil {
		return nil, err
	}
	if p.Height <= 0 || p.Width <= 0 {
		return nil, fmt.Errorf("%s: output size must be positive, got %dx%d", CropOp, p.Height, p.Width)
	}

	canvas := datapoints.CanvasSize{Height: p.Height, Width: p.Width}
	dx, dy := float64(p.Left), float64(p.Top)
	return mapBoxes(inpt, b, b.Format, canvas, func(bx box) box {
		return box{bx.x1 - dx, bx.y1 - dy, bx.x2 - dx, bx.y2 - dy}.clamp(canvas)
	})
}

func resizeBoundingBoxes(inpt any, args ...any) (any, error) {
	p, err := param[ResizeParams](ResizeOp, args)
	if err != nil {
		return nil, err
	}
	b, err := boxesInput(ResizeOp, inpt)
	if err != nil {
		return nil, err
	}
	if p.Height <= 0 || p.Width <= 0 {
		return nil, fmt.Errorf("%s: output size must be positive, got %dx%d", ResizeOp, p.Height, p.Width)
	}

	sx := float64(p.Width) / float64(b.CanvasSize.Width)
	sy := float64(p.Height) / float64(b.CanvasSize.Height)
	return mapBoxes(inpt, b, b.Format, datapoints.CanvasSize{Height: p.Height, Width: p.Width}, func(bx box) box {
		return box{bx.x1 * sx, bx.y1 * sy, bx.x2 * sx, bx.y2 * sy}
	})
}

func convertBoundingBoxFormat(inpt any, args ...any) (any, error) {
	p, err := param[ConvertFormatParams](ConvertBoundingBoxFormatOp, args)
	if err != nil {
		return nil, err
	}
	b, err := boxesInput(ConvertBoundingBoxFormatOp, inpt)
	if err != nil {
		return nil, err
	}
	format, err := datapoints.ParseBoundingBoxFormat(string(p.Format))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ConvertBoundingBoxFormatOp, err)
	}
	return mapBoxes(inpt, b, format, b.CanvasSize, func(bx box) box { return bx })
}

func clampBoundingBoxes(inpt any, _ ...any) (any, error) {
	b, err := boxesInput(ClampBoundingBoxesOp, inpt)
	if err != nil {
		return nil, err
	}
	return mapBoxes(inpt, b, b.Format, b.CanvasSize, func(bx box) box { return bx.clamp(b.CanvasSize) })
}
