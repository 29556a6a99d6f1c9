package optim

import "github.com/ilyaukin/tinynn/internal/nn"

// Momentum implements SGD with momentum.
//
// Update rule:
//
//	acc  = momentum * acc + gradient
//	param = param - lr * acc
//
// The accumulator smooths updates across steps, accelerating descent along
// consistent gradient directions and damping oscillations.
type Momentum struct {
	base
	momentum float64

	acc []float64 // allocated on first step, shaped like the flat gradient
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Accumulator decay factor (default: 0.9; use SGD for no momentum)
}

// NewMomentum creates a new Momentum optimizer.
//
// Zero-valued fields select the defaults; a negative LR is an error.
func NewMomentum(config MomentumConfig) (*Momentum, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum == 0 {
		config.Momentum = 0.9
	}

	b, err := newBase(config.LR)
	if err != nil {
		return nil, err
	}
	return &Momentum{base: b, momentum: config.Momentum}, nil
}

// Step applies one momentum update to every parameter of net.
func (m *Momentum) Step(net nn.Net) {
	m.update(net, m.computeStep)
}

func (m *Momentum) computeStep(grad []float64) []float64 {
	if m.acc == nil {
		m.acc = make([]float64, len(grad))
	}

	step := make([]float64, len(grad))
	for i, g := range grad {
		m.acc[i] = m.momentum*m.acc[i] + g
		step[i] = -m.lr * m.acc[i]
	}
	return step
}
