package datapoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vision/internal/tensor"
)

func TestBuiltinHierarchy(t *testing.T) {
	assert.Equal(t, []*Type{TensorType}, TensorType.MRO())
	assert.Equal(t, []*Type{DatapointType, TensorType}, DatapointType.MRO())
	assert.Equal(t, []*Type{ImageType, DatapointType, TensorType}, ImageType.MRO())

	for _, typ := range BuiltinTypes() {
		assert.True(t, typ.IsDatapoint(), typ.Name())
		assert.True(t, typ.IsSubtypeOf(DatapointType), typ.Name())
		assert.True(t, IsBuiltin(typ), typ.Name())
	}
	assert.False(t, TensorType.IsDatapoint())
	assert.False(t, IsBuiltin(TensorType))
	assert.False(t, DatapointType.Constructible())
}

func TestNewTypeInheritsFields(t *testing.T) {
	rotated := NewType("RotatedBoxes", BoundingBoxesType, WithFields("angle_unit"))

	assert.Equal(t, []string{FieldFormat, FieldCanvasSize, "angle_unit"}, rotated.Fields())
	assert.Equal(t, []*Type{rotated, BoundingBoxesType, DatapointType, TensorType}, rotated.MRO())
	assert.True(t, rotated.Constructible())
	assert.False(t, IsBuiltin(rotated))
	assert.NotEqual(t, rotated.ID(), BoundingBoxesType.ID())
}

func TestNewTypeRequiresParent(t *testing.T) {
	assert.Panics(t, func() { NewType("Orphan", nil) })
}

func TestNonDatapointSubtypeIsNotConstructible(t *testing.T) {
	sub := NewType("Quantized", TensorType)
	assert.False(t, sub.IsDatapoint())

	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	_, err = sub.New(raw, nil)
	require.ErrorIs(t, err, ErrNotConstructible)
}

func TestLookupType(t *testing.T) {
	typ, ok := LookupType("image")
	require.True(t, ok)
	assert.Same(t, ImageType, typ)

	typ, ok = LookupType("Tensor")
	require.True(t, ok)
	assert.Same(t, TensorType, typ)

	_, ok = LookupType("Caption")
	assert.False(t, ok)
}

func TestIsPureTensor(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	img, err := NewImage(raw)
	require.NoError(t, err)

	assert.True(t, IsPureTensor(raw))
	assert.False(t, IsPureTensor(img))
	assert.False(t, IsPureTensor([]float32{1}))
	assert.False(t, IsPureTensor(nil))
	assert.False(t, IsPureTensor((*tensor.RawTensor)(nil)))
}

func TestTypeOf(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	mask, err := NewMask(raw)
	require.NoError(t, err)

	typ, err := TypeOf(raw)
	require.NoError(t, err)
	assert.Same(t, TensorType, typ)

	typ, err = TypeOf(mask)
	require.NoError(t, err)
	assert.Same(t, MaskType, typ)

	_, err = TypeOf("not a tensor")
	require.ErrorIs(t, err, ErrNotATensor)
}

func TestNilDatapointIsNotATensor(t *testing.T) {
	var img *Image
	_, err := TypeOf(img)
	require.ErrorIs(t, err, ErrNotATensor)
	_, err = StorageOf(img)
	require.ErrorIs(t, err, ErrNotATensor)

	_, err = TypeOf(&Mask{})
	require.ErrorIs(t, err, ErrNotATensor, "datapoint without storage")
	_, err = BoundingBoxesOf((*BoundingBoxes)(nil))
	require.ErrorIs(t, err, ErrNotATensor)
}

func TestBoundingBoxesOf(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{0, 0, 1, 1}, tensor.Shape{1, 4})
	require.NoError(t, err)
	canvas := CanvasSize{Height: 4, Width: 4}

	boxes, err := NewBoundingBoxes(raw, XYWH, canvas)
	require.NoError(t, err)
	got, err := BoundingBoxesOf(boxes)
	require.NoError(t, err)
	assert.Same(t, boxes, got)

	sub := NewType("Anchors", BoundingBoxesType)
	anchors, err := sub.New(raw, Metadata{FieldFormat: XYWH, FieldCanvasSize: canvas})
	require.NoError(t, err)
	got, err = BoundingBoxesOf(anchors)
	require.NoError(t, err)
	assert.Same(t, raw, got.AsTensor())
	assert.Equal(t, XYWH, got.Format)
	assert.Equal(t, canvas, got.CanvasSize)

	img, err := NewImage(raw)
	require.NoError(t, err)
	_, err = BoundingBoxesOf(img)
	require.Error(t, err)
	_, err = BoundingBoxesOf(raw)
	require.Error(t, err)
}

func TestNewBoundingBoxesValidation(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{0, 0, 1, 1}, tensor.Shape{1, 4})
	require.NoError(t, err)

	_, err = NewBoundingBoxes(raw, "XXYY", CanvasSize{Height: 2, Width: 2})
	require.Error(t, err)

	_, err = NewBoundingBoxes(raw, XYXY, CanvasSize{})
	require.Error(t, err)

	flat, err := tensor.FromSlice([]float32{0, 0, 1}, tensor.Shape{3})
	require.NoError(t, err)
	_, err = NewBoundingBoxes(flat, XYXY, CanvasSize{Height: 2, Width: 2})
	require.Error(t, err)

	boxes, err := NewBoundingBoxes(raw, XYXY, CanvasSize{Height: 2, Width: 2})
	require.NoError(t, err)
	assert.Equal(t, "BoundingBoxes(Tensor[float32][1 4] on CPU, format=XYXY, canvas_size=(2, 2))", boxes.String())
}

func TestParseBoundingBoxFormat(t *testing.T) {
	f, err := ParseBoundingBoxFormat("cxcywh")
	require.NoError(t, err)
	assert.Equal(t, CXCYWH, f)

	_, err = ParseBoundingBoxFormat("polar")
	require.Error(t, err)
}

func TestDatapointStrings(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{0, 0, 1, 1}, tensor.Shape{1, 4})
	require.NoError(t, err)

	img, err := NewImage(raw)
	require.NoError(t, err)
	assert.Equal(t, "Image("+raw.String()+")", img.String())

	boxes, err := NewBoundingBoxes(raw, XYWH, CanvasSize{Height: 4, Width: 8})
	require.NoError(t, err)
	assert.Equal(t, "BoundingBoxes("+raw.String()+", format=XYWH, canvas_size=(4, 8))", boxes.String())
}
