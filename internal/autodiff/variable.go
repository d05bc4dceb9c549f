package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Variable is a handle to a scalar node on a Tape.
//
// Two variables are the same graph node only if they come from the same
// constructor or operation call. Equal values do not make them the same
// node. Reusing a variable in several expressions makes its gradient
// accumulate contributions from every use.
//
// The zero Variable is not attached to any tape; every method except
// Valid panics on it.
type Variable struct {
	tape *Tape
	id   int
	gen  uint64
}

// Constant records x as a non-differentiable leaf on t.
// It lifts Go numeric literals of any integer or float type.
func Constant[T constraints.Integer | constraints.Float](t *Tape, x T) Variable {
	return t.Const(float64(x))
}

// Tape returns the tape that owns v.
func (v Variable) Tape() *Tape {
	return v.tape
}

// ID returns v's position on its tape.
func (v Variable) ID() int {
	return v.id
}

// Valid reports whether v is attached to a tape and has not been
// invalidated by Tape.Reset.
func (v Variable) Valid() bool {
	return v.tape != nil && v.tape.check(v) == nil
}

func (v Variable) node() *node {
	if v.tape == nil {
		panic(errors.Wrap(ErrNoTape, "use of zero Variable"))
	}
	return v.tape.at(v)
}

// Value returns the forward value of v.
func (v Variable) Value() float64 {
	return v.node().value
}

// Grad returns the gradient accumulated into v by backward passes.
func (v Variable) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets v's accumulated gradient to zero.
func (v Variable) ZeroGrad() {
	v.node().grad = 0
}

// RequiresGrad reports whether gradients flow into v.
func (v Variable) RequiresGrad() bool {
	return v.node().requiresGrad
}

// Kind returns the operation that produced v, or ops.Leaf for inputs.
func (v Variable) Kind() ops.Kind {
	return v.node().kind
}

// Operands returns the variables v was computed from, in order.
// A variable used twice (x*x) appears twice.
func (v Variable) Operands() []Variable {
	n := v.node()
	in := n.inputs()
	out := make([]Variable, len(in))
	for i, id := range in {
		out[i] = Variable{tape: v.tape, id: id, gen: v.gen}
	}
	return out
}

// Detach returns a constant leaf holding v's value.
// Gradients do not flow through the result back into v.
func (v Variable) Detach() Variable {
	return v.tape.Const(v.Value())
}

// String implements fmt.Stringer.
func (v Variable) String() string {
	if !v.Valid() {
		return "Variable(invalid)"
	}
	n := v.node()
	return fmt.Sprintf("Variable(#%d %s value=%g grad=%g)", v.id, n.kind, n.value, n.grad)
}
