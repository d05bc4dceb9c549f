package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Add returns v + w.
func (v Variable) Add(w Variable) Variable {
	return v.binary(ops.Add, w)
}

// Sub returns v - w.
func (v Variable) Sub(w Variable) Variable {
	return v.binary(ops.Sub, w)
}

// Mul returns v * w.
func (v Variable) Mul(w Variable) Variable {
	return v.binary(ops.Mul, w)
}

// Div returns v / w.
//
// A zero divisor is not an error: the result follows IEEE-754 (±Inf or NaN)
// and so do the gradients flowing through it. Use DivChecked to reject it.
func (v Variable) Div(w Variable) Variable {
	return v.binary(ops.Div, w)
}

// DivChecked returns v / w, or ErrDivisionByZero if w's value is zero.
func (v Variable) DivChecked(w Variable) (Variable, error) {
	if w.Value() == 0 {
		return Variable{}, errors.Wrapf(ErrDivisionByZero, "dividing node #%d by node #%d", v.id, w.id)
	}
	return v.binary(ops.Div, w), nil
}

// Pow returns v raised to the power w.
func (v Variable) Pow(w Variable) Variable {
	return v.binary(ops.Pow, w)
}

// AddScalar returns v + c, with c lifted to a constant leaf.
func (v Variable) AddScalar(c float64) Variable {
	return v.binary(ops.Add, v.tape.Const(c))
}

// SubScalar returns v - c.
func (v Variable) SubScalar(c float64) Variable {
	return v.binary(ops.Sub, v.tape.Const(c))
}

// MulScalar returns v * c.
func (v Variable) MulScalar(c float64) Variable {
	return v.binary(ops.Mul, v.tape.Const(c))
}

// DivScalar returns v / c.
func (v Variable) DivScalar(c float64) Variable {
	return v.binary(ops.Div, v.tape.Const(c))
}

// PowScalar returns v ^ c.
func (v Variable) PowScalar(c float64) Variable {
	return v.binary(ops.Pow, v.tape.Const(c))
}

// Neg returns -v.
func (v Variable) Neg() Variable {
	return v.unary(ops.Neg)
}

// Log returns the natural logarithm of v.
func (v Variable) Log() Variable {
	return v.unary(ops.Log)
}

// Exp returns e^v.
func (v Variable) Exp() Variable {
	return v.unary(ops.Exp)
}

// ReLU returns max(0, v).
func (v Variable) ReLU() Variable {
	return v.unary(ops.ReLU)
}

// Sigmoid returns 1 / (1 + e^-v).
func (v Variable) Sigmoid() Variable {
	return v.unary(ops.Sigmoid)
}

// Tanh returns the hyperbolic tangent of v.
func (v Variable) Tanh() Variable {
	return v.unary(ops.Tanh)
}

// Sqrt returns the square root of v.
func (v Variable) Sqrt() Variable {
	return v.unary(ops.Sqrt)
}

// Sin returns the sine of v.
func (v Variable) Sin() Variable {
	return v.unary(ops.Sin)
}

// Cos returns the cosine of v.
func (v Variable) Cos() Variable {
	return v.unary(ops.Cos)
}

// SiLU returns v * sigmoid(v).
func (v Variable) SiLU() Variable {
	return v.unary(ops.SiLU)
}

func (v Variable) binary(kind ops.Kind, w Variable) Variable {
	v.node()
	return v.tape.record(kind, v, w)
}

func (v Variable) unary(kind ops.Kind) Variable {
	v.node()
	return v.tape.record(kind, v)
}

// Add returns a + b.
func Add(a, b Variable) Variable { return a.Add(b) }

// Sub returns a - b.
func Sub(a, b Variable) Variable { return a.Sub(b) }

// Mul returns a * b.
func Mul(a, b Variable) Variable { return a.Mul(b) }

// Div returns a / b.
func Div(a, b Variable) Variable { return a.Div(b) }

// Pow returns a ^ b.
func Pow(a, b Variable) Variable { return a.Pow(b) }

// Neg returns -a.
func Neg(a Variable) Variable { return a.Neg() }

// Sum returns the sum of vs, folded left to right.
// It panics with ErrArity when vs is empty.
func Sum(vs ...Variable) Variable {
	if len(vs) == 0 {
		panic(errors.Wrap(ErrArity, "Sum needs at least one variable"))
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}
