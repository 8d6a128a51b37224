package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

// tagKernel returns a kernel that reports which registration served the call.
func tagKernel(tag string) Kernel {
	return func(_ any, _ ...any) (any, error) {
		return tag, nil
	}
}

func floats(t testing.TB, values ...float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	require.NoError(t, err)
	return raw
}

// double is a plain tensor kernel returning 2 * input.
func double(inpt any, _ ...any) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.Scale(raw, 2)
}

func mustMatrix(t testing.TB) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	return raw
}
