package optim

// Scheduler adjusts an optimizer's learning rate over the course of
// training.
//
// A scheduler wraps exactly one Optimizer and is driven by the training
// loop calling Step once per epoch or iteration boundary. Each call
// advances an internal counter, recomputes the rate according to the
// scheduler's decay policy, and writes it back into the optimizer.
//
// At most one scheduler should drive a given optimizer; stacking several
// compounds their policies in undefined ways.
type Scheduler interface {
	// Step advances the counter by one, recomputes the optimizer's
	// learning rate, writes it back, and returns the new rate.
	Step() float64

	// CurrentLR reads the optimizer's live learning rate, including any
	// changes made outside this scheduler.
	CurrentLR() float64
}

// schedulerBase holds the wrapped optimizer, the learning rate snapshot
// taken at construction, and the step counter. Every concrete scheduler
// embeds it and supplies its policy to advance.
type schedulerBase struct {
	optim     Optimizer
	initialLR float64 // rate at construction; decay baseline for fixed-origin policies
	t         int     // incremented by one per Step, never reset
}

func newSchedulerBase(optimizer Optimizer) schedulerBase {
	return schedulerBase{
		optim:     optimizer,
		initialLR: optimizer.LR(),
	}
}

// CurrentLR reads the optimizer's live learning rate.
func (s *schedulerBase) CurrentLR() float64 {
	return s.optim.LR()
}

// advance performs the shared step cycle: increment the counter, compute
// the next rate, write it into the optimizer, and return it.
func (s *schedulerBase) advance(compute func() float64) float64 {
	s.t++
	s.optim.SetLR(compute())
	return s.optim.LR()
}
