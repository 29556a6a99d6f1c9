package optim

import (
	"fmt"
	"math"
)

// ExponentialLR decays the learning rate along a fixed exponential curve
// anchored at the rate snapshotted when the scheduler was constructed:
//
//	lr(t) = initialLR * DecayRate^(t / DecaySteps)    for t <= DecaySteps
//
// Each step recomputes the rate from the snapshot rather than compounding
// off the live value. Once t exceeds DecaySteps the rate freezes at its
// last computed value.
type ExponentialLR struct {
	schedulerBase
	decaySteps int
	decayRate  float64
}

// ExponentialLRConfig holds configuration for ExponentialLR.
type ExponentialLRConfig struct {
	DecaySteps int     // Length of the decay window in steps (required, > 0)
	DecayRate  float64 // Total decay over the window (default: 1/e)
}

// NewExponentialLR creates an ExponentialLR scheduler wrapping optimizer.
//
// DecaySteps must be positive; a zero DecayRate selects the default.
func NewExponentialLR(optimizer Optimizer, config ExponentialLRConfig) (*ExponentialLR, error) {
	if config.DecaySteps <= 0 {
		return nil, fmt.Errorf("optim: decay steps must be positive, got %d", config.DecaySteps)
	}
	if config.DecayRate == 0 {
		config.DecayRate = 1 / math.E
	}

	return &ExponentialLR{
		schedulerBase: newSchedulerBase(optimizer),
		decaySteps:    config.DecaySteps,
		decayRate:     config.DecayRate,
	}, nil
}

// Step advances the scheduler and returns the new learning rate.
func (s *ExponentialLR) Step() float64 {
	return s.advance(s.computeLR)
}

func (s *ExponentialLR) computeLR() float64 {
	if s.t <= s.decaySteps {
		return s.initialLR * math.Pow(s.decayRate, float64(s.t)/float64(s.decaySteps))
	}
	return s.CurrentLR()
}
