// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ilyaukin/tinynn/internal/tensor"
)

// Type aliases for the public API

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float64 array with a fixed shape and contiguous
// row-major backing data.
type Tensor = tensor.Tensor

// Zeros creates a zero-filled tensor of the given shape.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a Go slice; the slice is copied.
// Returns an error when the shape is invalid or does not match the slice
// length.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}
