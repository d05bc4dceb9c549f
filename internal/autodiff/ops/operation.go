// Package ops defines the differentiable scalar operations of the autodiff graph.
//
// Every graph node carries a Kind tag. The tag selects:
//   - Forward: the value of the node given its operand values
//   - LocalGrads: the partial derivatives of the node with respect to each
//     operand, evaluated from stored forward values only
//
// Supported operations:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Sub: d(a-b)/da = 1, d(a-b)/db = -1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - Pow: d(a^b)/da = b*a^(b-1), d(a^b)/db = a^b*ln(a)
//   - Neg, Log, Exp, Sqrt, Sin, Cos, ReLU, Sigmoid, SiLU, Tanh: unary,
//     see each file
package ops

import "fmt"

// Kind tags the operation that produced a node.
type Kind uint8

// Operation kinds. Leaf marks an input node with no operands.
const (
	Leaf Kind = iota
	Add
	Sub
	Mul
	Div
	Pow
	Neg
	Log
	Exp
	ReLU
	Sigmoid
	Tanh
	Sqrt
	Sin
	Cos
	SiLU

	numKinds
)

var kindNames = [numKinds]string{
	Leaf:    "leaf",
	Add:     "add",
	Sub:     "sub",
	Mul:     "mul",
	Div:     "div",
	Pow:     "pow",
	Neg:     "neg",
	Log:     "log",
	Exp:     "exp",
	ReLU:    "relu",
	Sigmoid: "sigmoid",
	Tanh:    "tanh",
	Sqrt:    "sqrt",
	Sin:     "sin",
	Cos:     "cos",
	SiLU:    "silu",
}

// String returns the lower-case operation name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known operation kind.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Arity returns the number of operands consumed by k: 0 for Leaf,
// 2 for the arithmetic binary operations and 1 for everything else.
// Unknown kinds report -1.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Sub, Mul, Div, Pow:
		return 2
	case Neg, Log, Exp, ReLU, Sigmoid, Tanh, Sqrt, Sin, Cos, SiLU:
		return 1
	default:
		return -1
	}
}

// Kinds returns every non-leaf operation kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := Add; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Forward computes the value of an operation of kind k.
// Unary operations ignore b. Forward panics for Leaf and unknown kinds,
// since those never compute a value from operands.
func Forward(k Kind, a, b float64) float64 {
	switch k {
	case Add:
		return addForward(a, b)
	case Sub:
		return subForward(a, b)
	case Mul:
		return mulForward(a, b)
	case Div:
		return divForward(a, b)
	case Pow:
		return powForward(a, b)
	case Neg:
		return negForward(a)
	case Log:
		return logForward(a)
	case Exp:
		return expForward(a)
	case ReLU:
		return reluForward(a)
	case Sigmoid:
		return sigmoidForward(a)
	case Tanh:
		return tanhForward(a)
	case Sqrt:
		return sqrtForward(a)
	case Sin:
		return sinForward(a)
	case Cos:
		return cosForward(a)
	case SiLU:
		return siluForward(a)
	}
	panic(fmt.Sprintf("ops.Forward: no forward function for %s", k))
}

// LocalGrads returns the partial derivatives of an operation of kind k with
// respect to its first and second operand. a and b are the operand values and
// out is the value Forward produced for them. For unary operations the second
// derivative is always 0.
func LocalGrads(k Kind, a, b, out float64) (da, db float64) {
	switch k {
	case Add:
		return addGrads()
	case Sub:
		return subGrads()
	case Mul:
		return mulGrads(a, b)
	case Div:
		return divGrads(a, b)
	case Pow:
		return powGrads(a, b, out)
	case Neg:
		return negGrad(), 0
	case Log:
		return logGrad(a), 0
	case Exp:
		return expGrad(out), 0
	case ReLU:
		return reluGrad(a), 0
	case Sigmoid:
		return sigmoidGrad(out), 0
	case Tanh:
		return tanhGrad(out), 0
	case Sqrt:
		return sqrtGrad(out), 0
	case Sin:
		return sinGrad(a), 0
	case Cos:
		return cosGrad(a), 0
	case SiLU:
		return siluGrad(a), 0
	}
	panic(fmt.Sprintf("ops.LocalGrads: no derivative for %s", k))
}
