package functional

import (
	"github.com/born-ml/vision/internal/datapoints"
	"github.com/born-ml/vision/internal/tensor"
)

func init() {
	for _, t := range []*datapoints.Type{datapoints.TensorType, datapoints.ImageType, datapoints.VideoType} {
		mustRegister(InvertOp, t, invertImage, true)
	}
}

// Invert inverts the colors of an image or video.
func Invert(inpt any) (any, error) {
	return registry.Call(InvertOp, inpt, false)
}

func invertImage(inpt any, _ ...any) (any, error) {
	raw, err := datapoints.StorageOf(inpt)
	if err != nil {
		return nil, err
	}
	return tensor.Invert(raw)
}
