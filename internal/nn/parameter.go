package nn

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// The parameter value lives outside any tape so graph nodes stay immutable
// while optimizers update weights between iterations. Bind records the
// current value as a differentiable leaf; gradients are read back from that
// leaf after Backward.
//
// Example:
//
//	w := nn.NewParameter("weight", 0.5)
//
//	tape.Reset()
//	loss := w.Bind(tape).Mul(x)
//	loss.Backward()
//
//	grad := w.Grad()
type Parameter struct {
	name  string            // Parameter name (e.g., "l0.n1.w0")
	value float64           // Current value
	leaf  autodiff.Variable // Leaf bound for the current iteration
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current parameter value.
func (p *Parameter) Value() float64 {
	return p.value
}

// SetValue replaces the parameter value.
//
// The parameter is unbound, so the next Bind records the new value.
func (p *Parameter) SetValue(x float64) {
	p.value = x
	p.leaf = autodiff.Variable{}
}

// Bind returns the leaf holding p on tape t, recording it first if needed.
//
// Repeated calls on the same tape return the same leaf, so every use of
// the parameter within an iteration accumulates into one gradient. After
// t.Reset the parameter is recorded again.
func (p *Parameter) Bind(t *autodiff.Tape) autodiff.Variable {
	if p.leaf.Valid() && p.leaf.Tape() == t {
		return p.leaf
	}
	p.leaf = t.Var(p.value)
	return p.leaf
}

// Grad returns the gradient accumulated into the bound leaf.
//
// Returns 0 if the parameter is unbound or its tape has been reset.
func (p *Parameter) Grad() float64 {
	if !p.leaf.Valid() {
		return 0
	}
	return p.leaf.Grad()
}

// ZeroGrad clears the gradient and unbinds the parameter.
func (p *Parameter) ZeroGrad() {
	if p.leaf.Valid() {
		p.leaf.ZeroGrad()
	}
	p.leaf = autodiff.Variable{}
}

// String implements fmt.Stringer.
func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(%s value=%g grad=%g)", p.name, p.value, p.Grad())
}
