package optim

import "fmt"

// LinearLR ramps the learning rate linearly from its value at construction
// down to FinalLR over DecaySteps steps, optionally starting only after
// StartStep steps have passed.
//
// Unlike ExponentialLR, the ramp compounds off the live rate: each step
// inside the window adds a fixed delta (FinalLR - initialLR) / DecaySteps
// to the current rate. Outside the window the rate is left unchanged.
type LinearLR struct {
	schedulerBase
	decaySteps int
	startStep  int
	delta      float64
}

// LinearLRConfig holds configuration for LinearLR.
type LinearLRConfig struct {
	DecaySteps int     // Length of the ramp in steps (required, > 0)
	FinalLR    float64 // Target rate, must be below the optimizer's current rate (zero means decay to zero)
	StartStep  int     // Steps to wait before ramping (default: 0)
}

// NewLinearLR creates a LinearLR scheduler wrapping optimizer.
//
// DecaySteps must be positive and FinalLR must be strictly below the
// optimizer's learning rate at construction.
func NewLinearLR(optimizer Optimizer, config LinearLRConfig) (*LinearLR, error) {
	if config.DecaySteps <= 0 {
		return nil, fmt.Errorf("optim: decay steps must be positive, got %d", config.DecaySteps)
	}

	b := newSchedulerBase(optimizer)
	if config.FinalLR >= b.initialLR {
		return nil, fmt.Errorf("optim: final learning rate %g must be below the initial rate %g",
			config.FinalLR, b.initialLR)
	}

	return &LinearLR{
		schedulerBase: b,
		decaySteps:    config.DecaySteps,
		startStep:     config.StartStep,
		delta:         (config.FinalLR - b.initialLR) / float64(config.DecaySteps),
	}, nil
}

// Step advances the scheduler and returns the new learning rate.
func (s *LinearLR) Step() float64 {
	return s.advance(s.computeLR)
}

func (s *LinearLR) computeLR() float64 {
	if s.t > s.startStep && s.t <= s.startStep+s.decaySteps {
		return s.CurrentLR() + s.delta
	}
	return s.CurrentLR()
}
