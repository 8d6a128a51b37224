package dispatch

import (
	"fmt"
	"reflect"

	"github.com/born-ml/vision/internal/datapoints"
)

// WithDatapointWrapping adapts a tensor-in, tensor-out kernel to datapoint
// inputs: the kernel sees the bare tensor and its output is rewrapped with
// the input's type and metadata. Errors are returned unchanged.
func WithDatapointWrapping(kernel Kernel) Kernel {
	return func(inpt any, args ...any) (any, error) {
		like, ok := inpt.(datapoints.Datapoint)
		if !ok {
			return kernel(inpt, args...)
		}

		raw, err := datapoints.StorageOf(like)
		if err != nil {
			return nil, err
		}
		output, err := kernel(raw, args...)
		if err != nil {
			return nil, err
		}
		return datapoints.Wrap(output, like)
	}
}

// WithMultiOutputWrapping adapts a kernel that returns a slice or array of
// outputs. The kernel receives the input unchanged; each output is rewrapped
// with the input's type and metadata, and the result has the same Go type as
// the kernel's output. The element type must be able to hold a datapoint,
// for example [5]any.
func WithMultiOutputWrapping(kernel Kernel) Kernel {
	return func(inpt any, args ...any) (any, error) {
		output, err := kernel(inpt, args...)
		if err != nil {
			return nil, err
		}
		like, ok := inpt.(datapoints.Datapoint)
		if !ok {
			return output, nil
		}
		return wrapEach(output, like)
	}
}

func wrapEach(output any, like datapoints.Datapoint) (any, error) {
	v := reflect.ValueOf(output)

	var result reflect.Value
	switch v.Kind() {
	case reflect.Slice:
		result = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	case reflect.Array:
		result = reflect.New(v.Type()).Elem()
	default:
		return nil, fmt.Errorf("multi-output kernel returned %T, expected a slice or array", output)
	}

	for i := 0; i < v.Len(); i++ {
		wrapped, err := datapoints.Wrap(v.Index(i).Interface(), like)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		w := reflect.ValueOf(wrapped)
		if !w.Type().AssignableTo(v.Type().Elem()) {
			return nil, fmt.Errorf("output %d: %s cannot hold %T", i, v.Type(), wrapped)
		}
		result.Index(i).Set(w)
	}
	return result.Interface(), nil
}
