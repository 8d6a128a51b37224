package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, -1}, Float32, CPU)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shape")
}

func TestZeroSizedTensor(t *testing.T) {
	raw, err := FromSlice([]float32{}, Shape{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 0, raw.NumElements())
	assert.Equal(t, []float32{}, Values[float32](raw))
	assert.Equal(t, 0, raw.Clone().NumElements())

	view := raw.View()
	assert.True(t, view.SharesStorage(raw))
	assert.Empty(t, Values[float32](view))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
}

func TestValuesZeroCopy(t *testing.T) {
	raw, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	require.NoError(t, err)

	data := Values[int64](raw)
	require.Len(t, data, 6)

	// Modify and verify zero-copy
	data[0] = 42
	if Values[int64](raw)[0] != 42 {
		t.Error("Values should return zero-copy slice")
	}
}

func TestValuesWrongDType(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Uint8, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = Values[float32](raw) })
}

func TestViewSharesStorage(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	view := raw.View()
	assert.True(t, view.SharesStorage(raw))
	assert.NotSame(t, raw, view)

	Values[float32](view)[1] = 7
	assert.Equal(t, float32(7), Values[float32](raw)[1])
}

func TestCloneCopiesStorage(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	clone := raw.Clone()
	assert.False(t, clone.SharesStorage(raw))
	assert.Equal(t, Values[float32](raw), Values[float32](clone))
}

func TestFloat64Accessors(t *testing.T) {
	for _, dtype := range []DataType{Float32, Float64, Int32, Int64, Uint8} {
		raw, err := NewRaw(Shape{2}, dtype, CPU)
		require.NoError(t, err)

		raw.SetFloat64At(1, 7)
		assert.InDelta(t, 7.0, raw.Float64At(1), 1e-9, dtype.String())
		assert.InDelta(t, 0.0, raw.Float64At(0), 1e-9, dtype.String())
	}
}

func TestRawTensorRelease(_ *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	view := raw.View()

	// Releasing one view keeps the shared buffer alive for the other.
	view.Release()
	_ = Values[float32](raw)[0]
	raw.Release()
}

func TestShapeSpatial(t *testing.T) {
	batch, h, w, err := Shape{3, 4, 5}.Spatial()
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, batch)
	assert.Equal(t, 4, h)
	assert.Equal(t, 5, w)

	_, _, _, err = Shape{5}.Spatial()
	require.Error(t, err)

	assert.Equal(t, Shape{3, 2, 2}, Shape{3, 4, 5}.WithSpatial(2, 2))
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "uint8", Uint8.String())
	assert.Equal(t, "unknown", DataType(99).String())
	assert.Equal(t, "CPU", CPU.String())
}
