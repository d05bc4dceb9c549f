// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/autograd/autodiff"
	"github.com/born-ml/autograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with Xavier-initialized weights.
func NewNeuron(in int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(in, act, rng)
}

// NewNeuronFromWeights creates a neuron with explicit initial values.
func NewNeuronFromWeights(weights []float64, bias float64, act Activation) *Neuron {
	return nn.NewNeuronFromWeights(weights, bias, act)
}

// Linear represents a fully connected layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLinear(2, 3, nn.NewReLU(), rng)
func NewLinear(inFeatures, outFeatures int, act Activation, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, act, rng)
}

// NewLinearFromWeights creates a linear layer with explicit initial values,
// one weight row per output.
func NewLinearFromWeights(weights [][]float64, biases []float64, act Activation) (*Linear, error) {
	return nn.NewLinearFromWeights(weights, biases, act)
}

// Sequential chains modules together.
type Sequential = nn.Sequential

// NewSequential creates a new sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// Activation is an element-wise non-linearity.
type Activation = nn.Activation

// Identity passes its input through unchanged.
type Identity = nn.Identity

// NewIdentity creates a new Identity activation.
func NewIdentity() *Identity {
	return nn.NewIdentity()
}

// ReLU represents the Rectified Linear Unit activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the sigmoid activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// SiLU represents the Sigmoid Linear Unit (Swish) activation.
type SiLU = nn.SiLU

// NewSiLU creates a new SiLU activation.
func NewSiLU() *SiLU {
	return nn.NewSiLU()
}

// Loss functions

// Loss compares a prediction with a target value.
type Loss = nn.Loss

// MSELoss computes the squared error of one prediction.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// BCELoss computes binary cross-entropy for a probability.
type BCELoss = nn.BCELoss

// NewBCELoss creates a new binary cross-entropy loss function.
func NewBCELoss() *BCELoss {
	return nn.NewBCELoss()
}

// BCEEpsilon is the stabilizer added inside BCELoss logarithms.
const BCEEpsilon = nn.BCEEpsilon

// MeanLoss averages per-sample losses.
func MeanLoss(losses []autodiff.Variable) autodiff.Variable {
	return nn.MeanLoss(losses)
}

// Utilities

// Constants records xs on t as non-differentiable inputs.
func Constants(t *autodiff.Tape, xs ...float64) []autodiff.Variable {
	return nn.Constants(t, xs...)
}

// Values returns the forward values of vs.
func Values(vs []autodiff.Variable) []float64 {
	return nn.Values(vs)
}

// ZeroGrad clears the gradients of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Xavier draws one weight from the Xavier uniform distribution.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float64 {
	return nn.Xavier(fanIn, fanOut, rng)
}
