// Package datapoints layers domain types (images, videos, bounding boxes,
// masks) on top of the plain tensor.
//
// Every value taking part in kernel dispatch is either a plain
// *tensor.RawTensor or a Datapoint. Datapoint types form a single-inheritance
// hierarchy described by *Type values:
//
//	Tensor
//	└── Datapoint (abstract marker)
//	    ├── Image
//	    ├── Video
//	    ├── BoundingBoxes (format, canvas_size)
//	    └── Mask
//
// Third parties add their own types with NewType:
//
//	var CaptionType = datapoints.NewType("Caption", datapoints.DatapointType)
//
// A datapoint never owns a copy of its data: AsTensor returns the same
// storage the datapoint was built from, and Wrap builds a new datapoint over a
// kernel's output without copying it.
package datapoints
