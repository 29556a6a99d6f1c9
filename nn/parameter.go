// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the network-facing contract the optimizer core
// consumes: trainable parameters and the Net interface returning ordered
// (parameter, gradient) pairs.
package nn

import (
	"github.com/ilyaukin/tinynn/internal/nn"
	"github.com/ilyaukin/tinynn/tensor"
)

// Parameter represents a trainable parameter: a named value tensor plus a
// gradient slot the network fills each backward pass.
//
// Methods:
//
//	Name() string
//	    Returns the parameter name (e.g., "weight", "bias").
//
//	Tensor() *tensor.Tensor
//	    Returns the value tensor, updated in place by the optimizer.
//
//	Grad() *tensor.Tensor
//	    Returns the gradient tensor (nil if not computed yet).
//
//	SetGrad(grad *tensor.Tensor)
//	    Sets the gradient tensor.
//
//	ZeroGrad()
//	    Clears the gradient.
type Parameter = nn.Parameter

// NewParameter creates a new trainable parameter around an initialized
// value tensor.
func NewParameter(name string, value *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, value)
}

// ParamGrad pairs a parameter tensor with its current gradient. Shapes
// must be equal; the optimizer mutates Param and only reads Grad.
type ParamGrad = nn.ParamGrad

// Net is the view of a network an optimizer consumes: an ordered sequence
// of (parameter, gradient) pairs, stable within one optimizer step.
type Net = nn.Net

// Params is a plain parameter list implementing Net. Parameters without a
// gradient are skipped.
type Params = nn.Params
