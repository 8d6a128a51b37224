// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transforms applies functionals to samples of mixed datapoints.
//
// Example:
//
//	pipeline := transforms.Compose{transforms.Crop(0, 0, 224, 224), transforms.HorizontalFlip()}
//	out, err := pipeline.Apply(img, boxes, label)
package transforms

import (
	"github.com/born-ml/vision/internal/transforms"
)

// Transform transforms every value of a sample.
type Transform = transforms.Transform

// Compose applies transforms in order.
type Compose = transforms.Compose

// Transforms.
var (
	HorizontalFlip           = transforms.HorizontalFlip
	VerticalFlip             = transforms.VerticalFlip
	Crop                     = transforms.Crop
	Resize                   = transforms.Resize
	Invert                   = transforms.Invert
	ConvertBoundingBoxFormat = transforms.ConvertBoundingBoxFormat
	ClampBoundingBoxes       = transforms.ClampBoundingBoxes
)
