package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

func boxesIn(t testing.TB, format datapoints.BoundingBoxFormat, canvas datapoints.CanvasSize, data []float32) *datapoints.BoundingBoxes {
	t.Helper()
	raw, err := tensor.FromSlice(data, tensor.Shape{len(data) / 4, 4})
	require.NoError(t, err)
	b, err := datapoints.NewBoundingBoxes(raw, format, canvas)
	require.NoError(t, err)
	return b
}

// xyxyBoxes places boxes on a 10x20 (HxW) canvas.
func xyxyBoxes(t testing.TB, data []float32) *datapoints.BoundingBoxes {
	t.Helper()
	return boxesIn(t, datapoints.XYXY, datapoints.CanvasSize{Height: 10, Width: 20}, data)
}

func asBoxes(t testing.TB, out any) *datapoints.BoundingBoxes {
	t.Helper()
	b, ok := out.(*datapoints.BoundingBoxes)
	require.True(t, ok, "got %T", out)
	return b
}

func TestHorizontalFlipBoundingBoxes(t *testing.T) {
	out, err := HorizontalFlip(xyxyBoxes(t, []float32{2, 1, 5, 4}))
	require.NoError(t, err)

	b := asBoxes(t, out)
	assert.Equal(t, []float32{15, 1, 18, 4}, tensor.Values[float32](b.AsTensor()))
	assert.Equal(t, datapoints.XYXY, b.Format)
	assert.Equal(t, datapoints.CanvasSize{Height: 10, Width: 20}, b.CanvasSize)
}

func TestVerticalFlipBoundingBoxesXYWH(t *testing.T) {
	in := boxesIn(t, datapoints.XYWH, datapoints.CanvasSize{Height: 10, Width: 20}, []float32{2, 1, 3, 3})
	out, err := VerticalFlip(in)
	require.NoError(t, err)

	b := asBoxes(t, out)
	assert.Equal(t, []float32{2, 6, 3, 3}, tensor.Values[float32](b.AsTensor()))
	assert.Equal(t, datapoints.XYWH, b.Format)
}

func TestCropBoundingBoxesUpdatesCanvasAndClamps(t *testing.T) {
	out, err := Crop(xyxyBoxes(t, []float32{2, 1, 5, 4, 0, 0, 20, 10}), 2, 3, 4, 4)
	require.NoError(t, err)

	b := asBoxes(t, out)
	assert.Equal(t, datapoints.CanvasSize{Height: 4, Width: 4}, b.CanvasSize)
	assert.Equal(t, []float32{0, 0, 2, 2, 0, 0, 4, 4}, tensor.Values[float32](b.AsTensor()))
}

func TestResizeBoundingBoxes(t *testing.T) {
	out, err := Resize(xyxyBoxes(t, []float32{2, 1, 5, 4}), 20, 10)
	require.NoError(t, err)

	b := asBoxes(t, out)
	assert.Equal(t, datapoints.CanvasSize{Height: 20, Width: 10}, b.CanvasSize)
	assert.Equal(t, []float32{1, 2, 2.5, 8}, tensor.Values[float32](b.AsTensor()))
}

func TestConvertBoundingBoxFormat(t *testing.T) {
	in := xyxyBoxes(t, []float32{2, 2, 6, 4})

	out, err := ConvertBoundingBoxFormat(in, datapoints.CXCYWH)
	require.NoError(t, err)
	b := asBoxes(t, out)
	assert.Equal(t, datapoints.CXCYWH, b.Format)
	assert.Equal(t, []float32{4, 3, 4, 2}, tensor.Values[float32](b.AsTensor()))

	out, err = ConvertBoundingBoxFormat(b, datapoints.XYWH)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2, 4, 2}, tensor.Values[float32](asBoxes(t, out).AsTensor()))

	_, err = ConvertBoundingBoxFormat(in, "polar")
	require.Error(t, err)
}

func TestClampBoundingBoxes(t *testing.T) {
	out, err := ClampBoundingBoxes(xyxyBoxes(t, []float32{-3, -1, 25, 4}))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 20, 4}, tensor.Values[float32](asBoxes(t, out).AsTensor()))
}

func TestBoundingBoxKernelsRejectPlainTensorInput(t *testing.T) {
	_, err := ClampBoundingBoxes(grid(t))
	require.Error(t, err)
}

func TestProperty_DoubleFlipIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		format := rapid.SampledFrom([]datapoints.BoundingBoxFormat{datapoints.XYXY, datapoints.XYWH, datapoints.CXCYWH}).Draw(rt, "format")
		canvas := datapoints.CanvasSize{
			Height: rapid.IntRange(1, 512).Draw(rt, "height"),
			Width:  rapid.IntRange(1, 512).Draw(rt, "width"),
		}
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		data := make([]float64, 4*n)
		for i := range data {
			data[i] = float64(rapid.IntRange(0, 512).Draw(rt, "coord"))
		}

		raw, err := tensor.FromSlice(data, tensor.Shape{n, 4})
		require.NoError(rt, err)
		in, err := datapoints.NewBoundingBoxes(raw, format, canvas)
		require.NoError(rt, err)

		once, err := HorizontalFlip(in)
		require.NoError(rt, err)
		twice, err := HorizontalFlip(once)
		require.NoError(rt, err)

		b, ok := twice.(*datapoints.BoundingBoxes)
		require.True(rt, ok)
		require.Equal(rt, format, b.Format)
		got := tensor.Values[float64](b.AsTensor())
		for i := range data {
			require.InDelta(rt, data[i], got[i], 1e-9)
		}
	})
}

var rotatedBoxesType = datapoints.NewType("RotatedBoxes", datapoints.BoundingBoxesType, datapoints.WithFields("angle"))

func rotatedBoxes(t *testing.T, data []float32) datapoints.Datapoint {
	t.Helper()
	raw, err := tensor.FromSlice(data, tensor.Shape{len(data) / 4, 4})
	require.NoError(t, err)
	v, err := rotatedBoxesType.New(raw, datapoints.Metadata{
		datapoints.FieldFormat:     datapoints.XYXY,
		datapoints.FieldCanvasSize: datapoints.CanvasSize{Height: 10, Width: 20},
		"angle":                    30.0,
	})
	require.NoError(t, err)
	return v
}

func asDatapoint(t *testing.T, out any) datapoints.Datapoint {
	t.Helper()
	dp, ok := out.(datapoints.Datapoint)
	require.True(t, ok, "got %T", out)
	return dp
}

func TestBoundingBoxesSubtypeKeepsTypeAndFields(t *testing.T) {
	in := rotatedBoxes(t, []float32{2, 1, 5, 4})

	out, err := HorizontalFlip(in)
	require.NoError(t, err)
	flipped := asDatapoint(t, out)
	assert.Same(t, rotatedBoxesType, flipped.Type())
	assert.Equal(t, []float32{15, 1, 18, 4}, tensor.Values[float32](flipped.AsTensor()))
	assert.Equal(t, 30.0, flipped.Metadata()["angle"])

	out, err = Crop(in, 2, 3, 4, 4)
	require.NoError(t, err)
	cropped := asDatapoint(t, out)
	assert.Same(t, rotatedBoxesType, cropped.Type())
	assert.Equal(t, datapoints.CanvasSize{Height: 4, Width: 4}, cropped.Metadata()[datapoints.FieldCanvasSize])
	assert.Equal(t, 30.0, cropped.Metadata()["angle"])

	out, err = ConvertBoundingBoxFormat(in, datapoints.XYWH)
	require.NoError(t, err)
	converted := asDatapoint(t, out)
	assert.Equal(t, datapoints.XYWH, converted.Metadata()[datapoints.FieldFormat])
	assert.Equal(t, []float32{2, 1, 3, 3}, tensor.Values[float32](converted.AsTensor()))

	size, err := GetSize(in)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, size)

	out, err = CenterCrop(in, 4, 4)
	require.NoError(t, err)
	assert.Same(t, rotatedBoxesType, asDatapoint(t, out).Type())
}

func TestBoundingBoxesSubtypeMissingMetadata(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{2, 1, 5, 4}, tensor.Shape{1, 4})
	require.NoError(t, err)
	in, err := datapoints.NewGeneric(rotatedBoxesType, raw, nil)
	require.NoError(t, err)

	_, err = HorizontalFlip(in)
	require.ErrorIs(t, err, datapoints.ErrMissingMetadata)
}

func TestEmptyBoundingBoxes(t *testing.T) {
	in := xyxyBoxes(t, []float32{})

	ops := map[string]func(any) (any, error){
		"horizontal_flip": HorizontalFlip,
		"vertical_flip":   VerticalFlip,
		"crop":            func(v any) (any, error) { return Crop(v, 1, 1, 5, 5) },
		"resize":          func(v any) (any, error) { return Resize(v, 5, 5) },
		"convert":         func(v any) (any, error) { return ConvertBoundingBoxFormat(v, datapoints.CXCYWH) },
		"clamp":           ClampBoundingBoxes,
	}
	for name, op := range ops {
		out, err := op(in)
		require.NoError(t, err, name)
		b := asBoxes(t, out)
		assert.Equal(t, tensor.Shape{0, 4}, b.AsTensor().Shape(), name)
		assert.Empty(t, tensor.Values[float32](b.AsTensor()), name)
	}
}
