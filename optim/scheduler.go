// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/ilyaukin/tinynn/internal/optim"
)

// Scheduler adjusts an optimizer's learning rate over training. A scheduler
// wraps exactly one optimizer; the training loop calls Step once per epoch
// or iteration boundary.
type Scheduler = optim.Scheduler

// StepLR decays the rate by Gamma every StepSize steps.
type StepLR = optim.StepLR

// StepLRConfig contains configuration for StepLR.
type StepLRConfig = optim.StepLRConfig

// NewStepLR creates a StepLR scheduler wrapping optimizer.
//
// Example:
//
//	scheduler, err := optim.NewStepLR(optimizer, optim.StepLRConfig{
//	    StepSize: 30,
//	    Gamma:    0.1,
//	})
func NewStepLR(optimizer Optimizer, config StepLRConfig) (*StepLR, error) {
	return optim.NewStepLR(optimizer, config)
}

// MultiStepLR decays the rate by Gamma at each listed milestone.
type MultiStepLR = optim.MultiStepLR

// MultiStepLRConfig contains configuration for MultiStepLR.
type MultiStepLRConfig = optim.MultiStepLRConfig

// NewMultiStepLR creates a MultiStepLR scheduler wrapping optimizer.
//
// Example:
//
//	scheduler, err := optim.NewMultiStepLR(optimizer, optim.MultiStepLRConfig{
//	    Milestones: []int{30, 60, 90},
//	})
func NewMultiStepLR(optimizer Optimizer, config MultiStepLRConfig) (*MultiStepLR, error) {
	return optim.NewMultiStepLR(optimizer, config)
}

// ExponentialLR decays the rate along a fixed exponential curve anchored at
// the rate snapshotted at construction, then freezes.
type ExponentialLR = optim.ExponentialLR

// ExponentialLRConfig contains configuration for ExponentialLR.
type ExponentialLRConfig = optim.ExponentialLRConfig

// NewExponentialLR creates an ExponentialLR scheduler wrapping optimizer.
//
// Example:
//
//	scheduler, err := optim.NewExponentialLR(optimizer, optim.ExponentialLRConfig{
//	    DecaySteps: 100,
//	})
func NewExponentialLR(optimizer Optimizer, config ExponentialLRConfig) (*ExponentialLR, error) {
	return optim.NewExponentialLR(optimizer, config)
}

// LinearLR ramps the rate linearly to FinalLR over DecaySteps steps,
// compounding off the live rate, then freezes.
type LinearLR = optim.LinearLR

// LinearLRConfig contains configuration for LinearLR.
type LinearLRConfig = optim.LinearLRConfig

// NewLinearLR creates a LinearLR scheduler wrapping optimizer.
//
// Example:
//
//	scheduler, err := optim.NewLinearLR(optimizer, optim.LinearLRConfig{
//	    DecaySteps: 50,
//	    FinalLR:    1e-6,
//	})
func NewLinearLR(optimizer Optimizer, config LinearLRConfig) (*LinearLR, error) {
	return optim.NewLinearLR(optimizer, config)
}
