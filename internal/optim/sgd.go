package optim

import "github.com/ilyaukin/tinynn/internal/nn"

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// SGD keeps no state between steps; identical gradients produce identical
// updates.
type SGD struct {
	base
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
//
// A zero LR selects the default; a negative LR is an error.
func NewSGD(config SGDConfig) (*SGD, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}

	b, err := newBase(config.LR)
	if err != nil {
		return nil, err
	}
	return &SGD{base: b}, nil
}

// Step applies one SGD update to every parameter of net.
func (s *SGD) Step(net nn.Net) {
	s.update(net, s.computeStep)
}

func (s *SGD) computeStep(grad []float64) []float64 {
	step := make([]float64, len(grad))
	for i, g := range grad {
		step[i] = -s.lr * g
	}
	return step
}
