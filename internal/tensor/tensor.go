// Package tensor implements the fixed-shape numeric buffer the rest of the
// library trains against.
//
// A Tensor is a dense, contiguous float64 array with a fixed shape. The
// optimizer core treats parameter tensors as caller-owned buffers it updates
// in place: it reads the flat backing slice through Data and adds computed
// steps directly into it. There is no autodiff, no device abstraction, and
// no view/stride machinery here; gradients are produced elsewhere and handed
// in as plain tensors of matching shape.
package tensor

import "fmt"

// Tensor is a dense float64 array with a fixed shape.
//
// The backing data is contiguous in row-major order. The shape is fixed for
// the tensor's lifetime; code that needs a different shape allocates a new
// tensor.
type Tensor struct {
	shape Shape
	data  []float64
}

// Zeros creates a zero-filled tensor of the given shape.
func Zeros(shape Shape) *Tensor {
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// Full creates a tensor of the given shape with every element set to value.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's backing array.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("tensor: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	t := Zeros(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat backing slice in row-major order.
//
// Mutating the returned slice mutates the tensor. This is the path the
// optimizer uses for in-place parameter updates.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := Zeros(t.shape)
	copy(c.data, t.data)
	return c
}
