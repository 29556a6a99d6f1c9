// Package optim implements the parameter-update core: gradient-based
// optimizers and learning-rate schedulers.
//
// This package provides:
//   - Optimizer interface: common surface for all optimizers
//   - SGD, Momentum, RMSProp, Adam: concrete update rules
//   - Scheduler interface with StepLR, MultiStepLR, ExponentialLR, LinearLR
//
// Every optimizer shares one update cycle: the gradients of all parameters
// are concatenated (in iteration order) into a single flat vector, the
// variant computes a flat step vector of the same length, and the step is
// partitioned back into per-parameter blocks and added to each parameter in
// place. Variant state (momentum buffers, moment estimates) is therefore
// always shaped like the flat gradient vector, never per parameter, and a
// new optimizer only has to implement the flat computeStep.
//
// Example usage:
//
//	optimizer, err := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scheduler, err := optim.NewStepLR(optimizer, optim.StepLRConfig{StepSize: 30})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for epoch := range epochs {
//	    for batch := range batches {
//	        net.Backward(batch) // network computes gradients
//	        optimizer.Step(net) // parameters updated in place
//	    }
//	    scheduler.Step() // decay the learning rate
//	}
package optim

import (
	"fmt"

	"github.com/ilyaukin/tinynn/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update network parameters in place based on the gradients the
// network exposes through nn.Net. The learning rate is a mutable scalar:
// schedulers read and overwrite it between steps via LR and SetLR.
//
// Optimizers are not safe for concurrent use; the training loop calls Step
// sequentially, at most once per iteration.
type Optimizer interface {
	// Step applies one gradient update to every parameter of net.
	//
	// The network's gradients are read once, the update is computed, and
	// each parameter tensor is mutated in place. Gradient shapes must
	// match their parameter shapes; this is the network's contract and is
	// not re-validated on the hot path.
	Step(net nn.Net)

	// LR returns the current learning rate.
	LR() float64

	// SetLR overwrites the learning rate.
	//
	// Used by schedulers; also available for manual warm-up or decay.
	SetLR(lr float64)
}

// Config is the base configuration shared by all optimizers.
//
// A zero LR selects the variant's documented default; a negative LR fails
// construction.
type Config struct {
	LR float64 // Learning rate
}

// base carries the learning rate and the shared flatten/compute/scatter
// cycle. Every concrete optimizer embeds it.
type base struct {
	lr float64
}

func newBase(lr float64) (base, error) {
	if lr <= 0 {
		return base{}, fmt.Errorf("optim: learning rate must be positive, got %g", lr)
	}
	return base{lr: lr}, nil
}

// LR returns the current learning rate.
func (b *base) LR() float64 {
	return b.lr
}

// SetLR overwrites the learning rate.
func (b *base) SetLR(lr float64) {
	b.lr = lr
}

// update runs one optimization step: flatten all gradients into one vector,
// let compute turn it into a flat step vector, then scatter the step back
// onto the parameters.
//
// The pair slice is fetched once and reused for both passes, so the scatter
// order is always the flatten order.
func (b *base) update(net nn.Net, compute func(grad []float64) []float64) {
	pairs := net.ParamsAndGrads()

	total := 0
	for _, pg := range pairs {
		total += pg.Grad.NumElements()
	}

	flat := make([]float64, 0, total)
	for _, pg := range pairs {
		flat = append(flat, pg.Grad.Data()...)
	}

	step := compute(flat)

	offset := 0
	for _, pg := range pairs {
		data := pg.Param.Data()
		block := step[offset : offset+len(data)]
		for i := range data {
			data[i] += block[i]
		}
		offset += len(data)
	}
}
