// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/ilyaukin/tinynn/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration shared by all optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD is plain stochastic gradient descent, stateless between steps.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}

// Momentum

// Momentum is SGD with a momentum accumulator.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a new Momentum optimizer.
//
// Example:
//
//	optimizer, err := optim.NewMomentum(optim.MomentumConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewMomentum(config MomentumConfig) (*Momentum, error) {
	return optim.NewMomentum(config)
}

// RMSProp

// RMSProp scales each gradient by a moving average of its square.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
//
// Example:
//
//	optimizer, err := optim.NewRMSProp(optim.RMSPropConfig{
//	    LR:    0.01,
//	    Decay: 0.99,
//	})
func NewRMSProp(config RMSPropConfig) (*RMSProp, error) {
	return optim.NewRMSProp(config)
}

// Adam (Adaptive Moment Estimation)

// Adam combines momentum and per-element rate adaptation with bias
// correction.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	optimizer, err := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) (*Adam, error) {
	return optim.NewAdam(config)
}
