package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// Activation is an element-wise non-linearity.
//
// Activations are also Modules, so they can be stacked in a Sequential
// between layers that use Identity.
type Activation interface {
	Module

	// Activate applies the non-linearity to a single variable.
	Activate(x autodiff.Variable) autodiff.Variable
}

// activate applies a to every input.
func activate(a Activation, inputs []autodiff.Variable) []autodiff.Variable {
	out := make([]autodiff.Variable, len(inputs))
	for i, x := range inputs {
		out[i] = a.Activate(x)
	}
	return out
}

// Identity passes its input through unchanged.
//
// Use it for linear outputs, e.g. regression heads.
type Identity struct{}

// NewIdentity creates a new Identity activation module.
func NewIdentity() *Identity {
	return &Identity{}
}

// Activate returns x.
func (*Identity) Activate(x autodiff.Variable) autodiff.Variable { return x }

// Forward returns inputs unchanged.
func (*Identity) Forward(_ *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return inputs
}

// Parameters returns nil (Identity has no trainable parameters).
func (*Identity) Parameters() []*Parameter { return nil }

// ReLU is a Rectified Linear Unit activation module.
//
// Applies f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Activate applies max(0, x).
func (*ReLU) Activate(x autodiff.Variable) autodiff.Variable { return x.ReLU() }

// Forward applies ReLU to every input.
func (r *ReLU) Forward(_ *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return activate(r, inputs)
}

// Parameters returns nil (ReLU has no trainable parameters).
func (*ReLU) Parameters() []*Parameter { return nil }

// Sigmoid is a sigmoid activation module.
//
// Applies f(x) = 1 / (1 + exp(-x)), squashing inputs into (0, 1).
// Commonly used for binary classification outputs.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Activate applies the logistic function.
func (*Sigmoid) Activate(x autodiff.Variable) autodiff.Variable { return x.Sigmoid() }

// Forward applies Sigmoid to every input.
func (s *Sigmoid) Forward(_ *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return activate(s, inputs)
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (*Sigmoid) Parameters() []*Parameter { return nil }

// Tanh is a hyperbolic tangent activation module.
//
// Applies f(x) = tanh(x), squashing inputs into (-1, 1).
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Activate applies tanh.
func (*Tanh) Activate(x autodiff.Variable) autodiff.Variable { return x.Tanh() }

// Forward applies Tanh to every input.
func (h *Tanh) Forward(_ *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return activate(h, inputs)
}

// Parameters returns nil (Tanh has no trainable parameters).
func (*Tanh) Parameters() []*Parameter { return nil }

// SiLU is a Sigmoid Linear Unit (Swish) activation module.
//
// Applies f(x) = x * sigmoid(x).
type SiLU struct{}

// NewSiLU creates a new SiLU activation module.
func NewSiLU() *SiLU {
	return &SiLU{}
}

// Activate applies x * sigmoid(x).
func (*SiLU) Activate(x autodiff.Variable) autodiff.Variable { return x.SiLU() }

// Forward applies SiLU to every input.
func (s *SiLU) Forward(_ *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return activate(s, inputs)
}

// Parameters returns nil (SiLU has no trainable parameters).
func (*SiLU) Parameters() []*Parameter { return nil }
