package optim

import "fmt"

// MultiStepLR decays the learning rate by gamma when the step counter
// reaches one of the milestones.
type MultiStepLR struct {
	schedulerBase
	milestones []int
	gamma      float64
}

// MultiStepLRConfig holds configuration for MultiStepLR.
type MultiStepLRConfig struct {
	Milestones []int   // Step counts at which to decay (required, strictly increasing)
	Gamma      float64 // Multiplicative decay factor (default: 0.1)
}

// NewMultiStepLR creates a MultiStepLR scheduler wrapping optimizer.
//
// Milestones must be strictly increasing; a zero Gamma selects the default.
func NewMultiStepLR(optimizer Optimizer, config MultiStepLRConfig) (*MultiStepLR, error) {
	for i := 1; i < len(config.Milestones); i++ {
		if config.Milestones[i-1] >= config.Milestones[i] {
			return nil, fmt.Errorf("optim: milestones must be strictly increasing, got %v",
				config.Milestones)
		}
	}
	if config.Gamma == 0 {
		config.Gamma = 0.1
	}

	milestones := make([]int, len(config.Milestones))
	copy(milestones, config.Milestones)

	return &MultiStepLR{
		schedulerBase: newSchedulerBase(optimizer),
		milestones:    milestones,
		gamma:         config.Gamma,
	}, nil
}

// Step advances the scheduler and returns the new learning rate.
func (s *MultiStepLR) Step() float64 {
	return s.advance(s.computeLR)
}

func (s *MultiStepLR) computeLR() float64 {
	for _, m := range s.milestones {
		if s.t == m {
			return s.gamma * s.CurrentLR()
		}
	}
	return s.CurrentLR()
}
