package optim

import (
	"math"

	"github.com/ilyaukin/tinynn/internal/nn"
)

// RMSProp maintains a moving (discounted) average of squared gradients and
// divides each gradient by the root of that average.
//
// Update rule:
//
//	ms   = decay * ms + (1 - decay) * gradient²
//	mom  = momentum * mom + lr * gradient / sqrt(ms + eps)
//	param = param - mom
//
// The eps term keeps the division finite when the average is near zero;
// it is part of the numeric contract, not an optional detail.
type RMSProp struct {
	base
	decay    float64
	momentum float64
	eps      float64

	ms  []float64 // moving average of squared gradients
	mom []float64 // momentum buffer
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Decay    float64 // Squared-gradient average decay (default: 0.99)
	Momentum float64 // Momentum factor (default: 0.0)
	Eps      float64 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer.
//
// Zero-valued LR, Decay, and Eps select the defaults; Momentum defaults to
// zero. A negative LR is an error.
func NewRMSProp(config RMSPropConfig) (*RMSProp, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Decay == 0 {
		config.Decay = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	b, err := newBase(config.LR)
	if err != nil {
		return nil, err
	}
	return &RMSProp{
		base:     b,
		decay:    config.Decay,
		momentum: config.Momentum,
		eps:      config.Eps,
	}, nil
}

// Step applies one RMSProp update to every parameter of net.
func (r *RMSProp) Step(net nn.Net) {
	r.update(net, r.computeStep)
}

func (r *RMSProp) computeStep(grad []float64) []float64 {
	if r.ms == nil {
		r.ms = make([]float64, len(grad))
		r.mom = make([]float64, len(grad))
	}

	step := make([]float64, len(grad))
	for i, g := range grad {
		r.ms[i] = r.decay*r.ms[i] + (1-r.decay)*g*g
		r.mom[i] = r.momentum*r.mom[i] + r.lr*g/math.Sqrt(r.ms[i]+r.eps)
		step[i] = -r.mom[i]
	}
	return step
}
