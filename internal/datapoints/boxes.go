package datapoints

import (
	"fmt"
	"strings"

	"github.com/born-ml/vision/internal/tensor"
)

// BoundingBoxFormat is the coordinate convention of a BoundingBoxes tensor.
type BoundingBoxFormat string

// Supported bounding box formats.
const (
	XYXY   BoundingBoxFormat = "XYXY"   // x1, y1, x2, y2
	XYWH   BoundingBoxFormat = "XYWH"   // x1, y1, width, height
	CXCYWH BoundingBoxFormat = "CXCYWH" // center x, center y, width, height
)

// ParseBoundingBoxFormat parses a format name case-insensitively.
func ParseBoundingBoxFormat(s string) (BoundingBoxFormat, error) {
	switch f := BoundingBoxFormat(strings.ToUpper(s)); f {
	case XYXY, XYWH, CXCYWH:
		return f, nil
	default:
		return "", fmt.Errorf("unknown bounding box format %q", s)
	}
}

// CanvasSize is the (height, width) of the image the boxes belong to.
type CanvasSize struct {
	Height int
	Width  int
}

// String formats the size as (height, width).
func (c CanvasSize) String() string {
	return fmt.Sprintf("(%d, %d)", c.Height, c.Width)
}

// BoundingBoxes is an [N, 4] tensor of boxes in a given format on a canvas.
type BoundingBoxes struct {
	raw        *tensor.RawTensor
	Format     BoundingBoxFormat
	CanvasSize CanvasSize
}

// NewBoundingBoxes wraps raw as bounding boxes without copying.
func NewBoundingBoxes(raw *tensor.RawTensor, format BoundingBoxFormat, canvas CanvasSize) (*BoundingBoxes, error) {
	if raw == nil {
		return nil, ErrNotATensor
	}
	if shape := raw.Shape(); len(shape) != 2 || shape[1] != 4 {
		return nil, fmt.Errorf("bounding boxes require shape [N, 4], got %v", shape)
	}
	if _, err := ParseBoundingBoxFormat(string(format)); err != nil {
		return nil, err
	}
	if canvas.Height <= 0 || canvas.Width <= 0 {
		return nil, fmt.Errorf("invalid canvas size %s", canvas)
	}
	return &BoundingBoxes{raw: raw, Format: format, CanvasSize: canvas}, nil
}

func boundingBoxesFromMetadata(raw *tensor.RawTensor, meta Metadata) (Datapoint, error) {
	format, ok := meta[FieldFormat].(BoundingBoxFormat)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingMetadata, FieldFormat)
	}
	canvas, ok := meta[FieldCanvasSize].(CanvasSize)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingMetadata, FieldCanvasSize)
	}
	return NewBoundingBoxes(raw, format, canvas)
}

// BoundingBoxesOf returns a bounding box view of v without copying. v is
// either a *BoundingBoxes or a datapoint whose type descends from
// BoundingBoxesType and whose metadata carries a format and canvas size.
func BoundingBoxesOf(v any) (*BoundingBoxes, error) {
	raw, err := StorageOf(v)
	if err != nil {
		return nil, err
	}
	dp, ok := v.(Datapoint)
	if !ok {
		return nil, fmt.Errorf("expected bounding boxes, got plain %T", v)
	}
	if b, ok := dp.(*BoundingBoxes); ok {
		return b, nil
	}
	if t := dp.Type(); !t.IsSubtypeOf(BoundingBoxesType) {
		return nil, fmt.Errorf("expected bounding boxes, got %s", t)
	}

	boxes, err := boundingBoxesFromMetadata(raw, dp.Metadata())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dp.Type(), err)
	}
	return boxes.(*BoundingBoxes), nil
}

// Type implements Datapoint.
func (*BoundingBoxes) Type() *Type { return BoundingBoxesType }

// AsTensor implements Datapoint.
func (b *BoundingBoxes) AsTensor() *tensor.RawTensor { return b.raw }

// Metadata implements Datapoint.
func (b *BoundingBoxes) Metadata() Metadata {
	return Metadata{FieldFormat: b.Format, FieldCanvasSize: b.CanvasSize}
}

// String implements fmt.Stringer.
func (b *BoundingBoxes) String() string {
	return fmt.Sprintf("BoundingBoxes(%s, format=%s, canvas_size=%s)", b.raw, b.Format, b.CanvasSize)
}
