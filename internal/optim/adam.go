package optim

import (
	"math"

	"github.com/ilyaukin/tinynn/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam keeps exponential moving averages of gradients (first moment) and
// squared gradients (second moment), with a step-count based correction for
// their zero initialization folded into the learning rate:
//
//	t    += 1
//	lr_t  = lr * sqrt(1 - beta2^t) / (1 - beta1^t)
//	m     = beta1 * m + (1 - beta1) * gradient
//	v     = beta2 * v + (1 - beta2) * gradient²
//	param = param - lr_t * m / (sqrt(v) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
type Adam struct {
	base
	beta1 float64
	beta2 float64
	eps   float64

	t int       // timestep for bias correction
	m []float64 // first moment estimates
	v []float64 // second moment estimates
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Moment decay rates (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Zero-valued fields select the defaults; a negative LR is an error.
func NewAdam(config AdamConfig) (*Adam, error) {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	b, err := newBase(config.LR)
	if err != nil {
		return nil, err
	}
	return &Adam{
		base:  b,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}, nil
}

// Step applies one Adam update to every parameter of net.
func (a *Adam) Step(net nn.Net) {
	a.update(net, a.computeStep)
}

// Timestep returns the number of steps taken so far.
func (a *Adam) Timestep() int {
	return a.t
}

func (a *Adam) computeStep(grad []float64) []float64 {
	if a.m == nil {
		a.m = make([]float64, len(grad))
		a.v = make([]float64, len(grad))
	}

	a.t++
	lrT := a.lr * math.Sqrt(1-math.Pow(a.beta2, float64(a.t))) /
		(1 - math.Pow(a.beta1, float64(a.t)))

	step := make([]float64, len(grad))
	for i, g := range grad {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g
		step[i] = -lrT * a.m[i] / (math.Sqrt(a.v[i]) + a.eps)
	}
	return step
}
