package optim

import "fmt"

// StepLR decays the learning rate by gamma every StepSize steps.
//
// On step t the rate is multiplied by gamma when t is a multiple of
// StepSize, and left unchanged otherwise.
type StepLR struct {
	schedulerBase
	stepSize int
	gamma    float64
}

// StepLRConfig holds configuration for StepLR.
type StepLRConfig struct {
	StepSize int     // Decay period in steps (required, >= 1)
	Gamma    float64 // Multiplicative decay factor (default: 0.1)
}

// NewStepLR creates a StepLR scheduler wrapping optimizer.
//
// StepSize must be at least 1; a zero Gamma selects the default.
func NewStepLR(optimizer Optimizer, config StepLRConfig) (*StepLR, error) {
	if config.StepSize < 1 {
		return nil, fmt.Errorf("optim: step size must be at least 1, got %d", config.StepSize)
	}
	if config.Gamma == 0 {
		config.Gamma = 0.1
	}

	return &StepLR{
		schedulerBase: newSchedulerBase(optimizer),
		stepSize:      config.StepSize,
		gamma:         config.Gamma,
	}, nil
}

// Step advances the scheduler and returns the new learning rate.
func (s *StepLR) Step() float64 {
	return s.advance(s.computeLR)
}

func (s *StepLR) computeLR() float64 {
	if s.t%s.stepSize == 0 {
		return s.gamma * s.CurrentLR()
	}
	return s.CurrentLR()
}
