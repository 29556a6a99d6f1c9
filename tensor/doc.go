// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the fixed-shape float64
// buffers the library trains against.
//
// A Tensor couples a Shape with a contiguous row-major float64 slice. The
// optimizer core updates parameter tensors in place through Data; networks
// hand gradients in as tensors of matching shape.
//
// Example:
//
//	w, err := tensor.FromSlice([]float64{0.1, -0.3, 0.2}, tensor.Shape{3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Data()[0] += 0.01 // in-place mutation
package tensor
