// Package nn implements scalar neural network modules on top of autodiff.
//
// This package provides building blocks for small networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable scalars bound to a tape per iteration
//   - Neuron, Linear: Fully connected units and layers
//   - Activations: Identity, ReLU, Sigmoid, Tanh, SiLU
//   - Loss functions: MSE, BCE
//   - Sequential: Container for stacking layers
//
// Every forward pass records onto a caller-owned autodiff.Tape. The usual
// training loop resets the tape at the start of each iteration.
package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build small architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 3, nn.NewSigmoid(), rng),
//	    nn.NewLinear(3, 1, nn.NewSigmoid(), rng),
//	)
type Module interface {
	// Forward records the module's computation on t and returns its outputs.
	Forward(t *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable

	// Parameters returns all trainable parameters of this module.
	// Returns nil for modules without parameters (e.g., activations).
	Parameters() []*Parameter
}

// Constants records xs on t as non-differentiable leaves.
// Use it to feed training data into a Module.
func Constants(t *autodiff.Tape, xs ...float64) []autodiff.Variable {
	vs := make([]autodiff.Variable, len(xs))
	for i, x := range xs {
		vs[i] = t.Const(x)
	}
	return vs
}

// Values returns the forward values of vs.
func Values(vs []autodiff.Variable) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Value()
	}
	return out
}

// ZeroGrad clears the gradients of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
