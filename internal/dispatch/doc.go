// Package dispatch selects type-specific kernels for functionals.
//
// A Registry maps each Functional to a set of kernels keyed by the concrete
// input type. Resolution walks the input type's ancestry, most specific type
// first, and stops at the Datapoint marker so that custom datapoint types
// never silently fall back to plain tensor kernels:
//
//	k, err := dispatch.ResolveKernel(functional.CropOp, datapoints.ImageType, false)
//	out, err := k(img, functional.CropParams{Top: 0, Left: 0, Height: 32, Width: 32})
//
// Kernels registered for datapoint types are normally wrapped: they receive
// the bare tensor and their output is rewrapped into the input's type. Third
// parties extend dispatch for their own types with RegisterKernel.
//
// The default registry is filled by package initialization and is
// append-only afterwards. Registering from several goroutines at once is not
// supported; resolving is safe once registration is complete.
package dispatch
