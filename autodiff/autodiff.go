// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Variables are recorded on a Tape as they are composed. Calling Backward on
// any variable propagates gradients to every variable it depends on,
// summing contributions over all paths.
//
// Example:
//
//	import "github.com/born-ml/autograd/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    x := tape.Var(5)
//	    y := tape.Var(3)
//
//	    // z = y*x*x + x*y*y
//	    z := y.Mul(x).Mul(x).Add(x.Mul(y).Mul(y))
//	    z.Backward()
//
//	    fmt.Println(z.Value())  // 120
//	    fmt.Println(x.Grad())   // 39
//	    fmt.Println(y.Grad())   // 55
//	}
package autodiff

import (
	"io"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/parallel"
	"golang.org/x/exp/constraints"
)

// Tape owns the nodes of a computational graph.
type Tape = autodiff.Tape

// Variable is a handle to a scalar node on a Tape.
type Variable = autodiff.Variable

// Config holds tape configuration.
type Config = autodiff.Config

// NewTape creates an empty tape with the default configuration.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// NewTapeWithConfig creates an empty tape.
//
// Example:
//
//	tape := autodiff.NewTapeWithConfig(autodiff.Config{
//	    InitialCapacity: 1024,
//	    WarnNonFinite:   true,
//	})
func NewTapeWithConfig(cfg Config) *Tape {
	return autodiff.NewTapeWithConfig(cfg)
}

// DefaultConfig returns the configuration used by NewTape.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// Constant records x as a non-differentiable leaf on t.
func Constant[T constraints.Integer | constraints.Float](t *Tape, x T) Variable {
	return autodiff.Constant(t, x)
}

// Operations

// Kind identifies the operation that produced a variable.
type Kind = ops.Kind

// Operation kinds.
const (
	LeafOp    = ops.Leaf
	AddOp     = ops.Add
	SubOp     = ops.Sub
	MulOp     = ops.Mul
	DivOp     = ops.Div
	PowOp     = ops.Pow
	NegOp     = ops.Neg
	LogOp     = ops.Log
	ExpOp     = ops.Exp
	ReLUOp    = ops.ReLU
	SigmoidOp = ops.Sigmoid
	TanhOp    = ops.Tanh
	SqrtOp    = ops.Sqrt
	SinOp     = ops.Sin
	CosOp     = ops.Cos
	SiLUOp    = ops.SiLU
)

// Add returns a + b.
func Add(a, b Variable) Variable { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Variable) Variable { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b Variable) Variable { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div(a, b Variable) Variable { return autodiff.Div(a, b) }

// Pow returns a ^ b.
func Pow(a, b Variable) Variable { return autodiff.Pow(a, b) }

// Neg returns -a.
func Neg(a Variable) Variable { return autodiff.Neg(a) }

// Sum returns the sum of vs.
func Sum(vs ...Variable) Variable { return autodiff.Sum(vs...) }

// Apply records operation kind over operands that may mix Variables and
// Go numbers.
//
// Example:
//
//	y, err := autodiff.Apply(autodiff.MulOp, x, 2)
func Apply(kind Kind, operands ...any) (Variable, error) {
	return autodiff.Apply(kind, operands...)
}

// WriteDOT writes the graph reachable from root in Graphviz DOT format.
func WriteDOT(w io.Writer, root Variable) error {
	return autodiff.WriteDOT(w, root)
}

// Gradient checking

// Func builds a scalar expression from input variables on a fresh tape.
type Func = autodiff.Func

// GradCheckConfig configures CheckGradients.
type GradCheckConfig = autodiff.GradCheckConfig

// GradCheckReport holds both gradient estimates of a check.
type GradCheckReport = autodiff.GradCheckReport

// ParallelConfig controls how CheckGradients fans out over inputs.
type ParallelConfig = parallel.Config

// DefaultGradCheckConfig returns the default gradient check tolerances.
func DefaultGradCheckConfig() GradCheckConfig {
	return autodiff.DefaultGradCheckConfig()
}

// CheckGradients compares Backward against central finite differences.
//
// Example:
//
//	f := func(t *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
//	    return xs[0].Mul(xs[1]).Sigmoid()
//	}
//	_, err := autodiff.CheckGradients(f, []float64{0.5, -1}, autodiff.DefaultGradCheckConfig())
func CheckGradients(f Func, at []float64, cfg GradCheckConfig) (GradCheckReport, error) {
	return autodiff.CheckGradients(f, at, cfg)
}

// Errors

// Errors returned or raised by this package wrap one of these.
// Match them with errors.Is.
var (
	ErrDivisionByZero         = autodiff.ErrDivisionByZero
	ErrCyclicGraph            = autodiff.ErrCyclicGraph
	ErrUnsupportedOperandType = autodiff.ErrUnsupportedOperandType
	ErrArity                  = autodiff.ErrArity
	ErrNoTape                 = autodiff.ErrNoTape
	ErrTapeMismatch           = autodiff.ErrTapeMismatch
	ErrStaleVariable          = autodiff.ErrStaleVariable
	ErrUnknownOp              = autodiff.ErrUnknownOp
	ErrGradientMismatch       = autodiff.ErrGradientMismatch
)
