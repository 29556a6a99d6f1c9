// Copyright 2026 The tinynn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers and learning-rate
// schedulers for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD, Momentum, RMSProp, Adam optimizers
//   - StepLR, MultiStepLR, ExponentialLR, LinearLR schedulers
//   - Optimizer and Scheduler interfaces for custom implementations
//
// Optimizers consume the (parameter, gradient) pairs a network exposes
// through nn.Net and update every parameter tensor in place. Schedulers
// wrap one optimizer and rewrite its learning rate once per Step call.
//
// # Basic Usage
//
//	import (
//	    "github.com/ilyaukin/tinynn/nn"
//	    "github.com/ilyaukin/tinynn/optim"
//	)
//
//	func main() {
//	    optimizer, err := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    scheduler, err := optim.NewMultiStepLR(optimizer, optim.MultiStepLRConfig{
//	        Milestones: []int{30, 60},
//	        Gamma:      0.1,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for epoch := 0; epoch < epochs; epoch++ {
//	        for _, batch := range batches {
//	            net.Backward(batch)  // network computes gradients
//	            optimizer.Step(net)  // parameters updated in place
//	        }
//	        scheduler.Step()
//	    }
//	}
//
// # Update Cycle
//
// Every optimizer shares one update cycle: all gradients are concatenated
// (in the network's iteration order) into a single flat vector, the variant
// computes a flat step vector of the same length, and the step is split
// back into per-parameter blocks and added to each parameter in place.
// Optimizer state is therefore a flat buffer shaped like the whole gradient
// vector, allocated lazily on the first step.
//
// # Concurrency
//
// Optimizers and schedulers hold unsynchronized state and expect a single
// sequential caller. Wrap them in external locking if a training loop is
// ever made concurrent.
package optim
