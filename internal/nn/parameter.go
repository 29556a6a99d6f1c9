// Package nn defines the network-facing contract the optimizer core
// consumes: trainable parameters and the Net interface that hands the
// optimizer an ordered sequence of (parameter, gradient) pairs.
//
// The library does not define layers or compute gradients; the network
// collaborator (a model built elsewhere, or a training loop computing
// gradients by hand) implements Net and is responsible for keeping each
// gradient's shape equal to its parameter's shape.
package nn

import (
	"github.com/ilyaukin/tinynn/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter pairs a named value tensor with a gradient slot. The value
// tensor is updated in place by the optimizer; the gradient is recomputed
// by the network each iteration and cleared with ZeroGrad.
type Parameter struct {
	name  string
	value *tensor.Tensor
	grad  *tensor.Tensor
}

// NewParameter creates a new trainable parameter.
//
// The value tensor should be initialized before creating the Parameter.
// The gradient slot starts nil and is filled by the network's backward
// pass via SetGrad.
func NewParameter(name string, value *tensor.Tensor) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter's value tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.value
}

// Grad returns the gradient tensor, or nil if none has been set.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// ParamGrad pairs a parameter tensor with its current gradient.
//
// Param is mutated in place by the optimizer; Grad is read-only from the
// optimizer's perspective. Both tensors must have equal shapes.
type ParamGrad struct {
	Param *tensor.Tensor
	Grad  *tensor.Tensor
}

// Net is the view of a network the optimizer consumes.
//
// ParamsAndGrads returns the current (parameter, gradient) pairs in a
// stable order. The order must not change within one optimizer step; the
// optimizer relies on it when flattening gradients and scattering updates
// back.
type Net interface {
	ParamsAndGrads() []ParamGrad
}

// Params is a plain parameter list implementing Net.
//
// Parameters whose gradient is nil (not part of the last backward pass)
// are skipped.
type Params []*Parameter

// ParamsAndGrads returns pairs for every parameter with a gradient, in
// list order.
func (ps Params) ParamsAndGrads() []ParamGrad {
	pairs := make([]ParamGrad, 0, len(ps))
	for _, p := range ps {
		if p == nil || p.Grad() == nil {
			continue
		}
		pairs = append(pairs, ParamGrad{Param: p.Tensor(), Grad: p.Grad()})
	}
	return pairs
}
