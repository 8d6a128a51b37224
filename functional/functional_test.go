package functional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vision/datapoints"
	"github.com/born-ml/vision/functional"
	"github.com/born-ml/vision/tensor"
	"github.com/born-ml/vision/transforms"
)

var keypointsType = datapoints.NewType("Keypoints", datapoints.DatapointType)

func reverseKernel(inpt any, _ ...any) (any, error) {
	raw := inpt.(*tensor.RawTensor)
	src := tensor.Values[float32](raw)
	out := make([]float32, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return tensor.FromSlice(out, raw.Shape())
}

func TestPublicExtension(t *testing.T) {
	require.NoError(t, functional.RegisterKernel("horizontal_flip", keypointsType, reverseKernel))

	err := functional.RegisterKernel("horizontal_flip", keypointsType, reverseKernel)
	require.ErrorIs(t, err, functional.ErrDuplicateKernel)

	raw, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	kp, err := datapoints.NewGeneric(keypointsType, raw, nil)
	require.NoError(t, err)

	out, err := functional.HorizontalFlip(kp)
	require.NoError(t, err)
	got, ok := out.(datapoints.Datapoint)
	require.True(t, ok, "got %T", out)
	assert.Same(t, keypointsType, got.Type())
	assert.Equal(t, []float32{3, 2, 1}, tensor.Values[float32](got.AsTensor()))

	// Transforms reach the same kernel.
	sample, err := transforms.VerticalFlip().Apply(kp)
	require.NoError(t, err)
	assert.Same(t, kp, sample[0], "no vertical_flip kernel, passed through")

	_, err = functional.ResolveKernel(functional.VerticalFlipOp, keypointsType, false)
	require.ErrorIs(t, err, functional.ErrNoKernel)
}
