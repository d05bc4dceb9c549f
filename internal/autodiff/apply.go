package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Apply records operation kind over operands chosen at runtime.
//
// Each operand is either a Variable or a Go number. Numbers are lifted to
// constant leaves on the tape of the first Variable operand, so they never
// collect gradient.
//
// Example:
//
//	y, err := autodiff.Apply(ops.Mul, x, 2)    // x * 2
//	z, err := autodiff.Apply(ops.Sub, 1.0, y)  // 1 - y
//
// Errors wrap ErrUnknownOp, ErrArity, ErrNoTape, ErrUnsupportedOperandType,
// ErrTapeMismatch or ErrStaleVariable.
func Apply(kind ops.Kind, operands ...any) (Variable, error) {
	if !kind.Valid() || kind == ops.Leaf {
		return Variable{}, errors.Wrapf(ErrUnknownOp, "cannot apply %s", kind)
	}
	if len(operands) != kind.Arity() {
		return Variable{}, errors.Wrapf(ErrArity, "%s takes %d operands, got %d", kind, kind.Arity(), len(operands))
	}

	var tape *Tape
	for _, operand := range operands {
		if v, ok := asVariable(operand); ok && v.tape != nil {
			tape = v.tape
			break
		}
	}
	if tape == nil {
		return Variable{}, errors.Wrapf(ErrNoTape, "operands of %s", kind)
	}

	vars := make([]Variable, len(operands))
	for i, operand := range operands {
		v, err := lift(tape, operand)
		if err != nil {
			return Variable{}, errors.WithMessagef(err, "operand #%d of %s", i, kind)
		}
		vars[i] = v
	}

	var result Variable
	err := exceptions.TryCatch[error](func() {
		result = tape.record(kind, vars...)
	})
	if err != nil {
		return Variable{}, err
	}
	return result, nil
}

func asVariable(x any) (Variable, bool) {
	switch v := x.(type) {
	case Variable:
		return v, true
	case *Variable:
		if v != nil {
			return *v, true
		}
	}
	return Variable{}, false
}

// lift converts operand into a Variable on t.
func lift(t *Tape, operand any) (Variable, error) {
	if v, ok := asVariable(operand); ok {
		if v.tape == nil {
			return Variable{}, errors.Wrap(ErrNoTape, "zero Variable operand")
		}
		return v, nil
	}
	switch x := operand.(type) {
	case float64:
		return Constant(t, x), nil
	case float32:
		return Constant(t, x), nil
	case int:
		return Constant(t, x), nil
	case int8:
		return Constant(t, x), nil
	case int16:
		return Constant(t, x), nil
	case int32:
		return Constant(t, x), nil
	case int64:
		return Constant(t, x), nil
	case uint:
		return Constant(t, x), nil
	case uint8:
		return Constant(t, x), nil
	case uint16:
		return Constant(t, x), nil
	case uint32:
		return Constant(t, x), nil
	case uint64:
		return Constant(t, x), nil
	}
	return Variable{}, errors.Wrapf(ErrUnsupportedOperandType, "%T", operand)
}
