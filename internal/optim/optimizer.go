// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	for epoch := range epochs {
//	    tape.Reset()
//	    loss := computeLoss(tape, model, data)
//	    loss.Backward()
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"math"

	"github.com/born-ml/autograd/internal/nn"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameter values from the gradients accumulated by the
// last backward pass.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Gradients are read from each parameter's bound leaf, so Step must run
	// after Backward and before the tape is reset.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, e.g. for scheduling.
	SetLR(lr float64)
}

// gradients collects the current gradient of every parameter.
func gradients(params []*nn.Parameter) []float64 {
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = p.Grad()
	}
	return grads
}

// logStep reports step statistics at verbosity 2.
func logStep(name string, step int, lr float64, grads []float64) {
	if !klog.V(2).Enabled() || len(grads) == 0 {
		return
	}
	klog.Infof("%s step %d: lr=%g params=%d grad_norm=%g max_abs_grad=%g",
		name, step, lr, len(grads), floats.Norm(grads, 2), floats.Norm(grads, math.Inf(1)))
}

// zeroGrad clears the gradients of params.
func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
