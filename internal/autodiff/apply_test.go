package autodiff_test

import (
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_LiftsNumbers tests mixing variables and Go numbers.
func TestApply_LiftsNumbers(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(4)

	twoX := must.M1(autodiff.Apply(ops.Mul, x, 2))
	z := must.M1(autodiff.Apply(ops.Sub, 1.0, twoX))
	assert.InDelta(t, -7.0, z.Value(), 1e-12)

	z.Backward()
	assert.InDelta(t, -2.0, x.Grad(), 1e-12)

	// Lifted literals are constants and never collect gradient.
	lhs := z.Operands()[0]
	assert.Equal(t, ops.Leaf, lhs.Kind())
	assert.False(t, lhs.RequiresGrad())
	assert.Equal(t, 0.0, lhs.Grad())
}

// TestApply_OperandTypes tests every accepted operand type.
func TestApply_OperandTypes(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(1)

	operands := []any{
		int(1), int8(1), int16(1), int32(1), int64(1),
		uint(1), uint8(1), uint16(1), uint32(1), uint64(1),
		float32(1), float64(1), x, &x,
	}
	for _, operand := range operands {
		v, err := autodiff.Apply(ops.Add, x, operand)
		require.NoError(t, err, "operand %T", operand)
		assert.InDelta(t, 2.0, v.Value(), 1e-12, "operand %T", operand)
	}
}

// TestApply_Unary tests dynamic dispatch of a unary kind.
func TestApply_Unary(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(0)

	y, err := autodiff.Apply(ops.Sigmoid, x)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y.Value(), 1e-12)

	y.Backward()
	assert.InDelta(t, 0.25, x.Grad(), 1e-12)
}

// TestApply_Errors tests the failure modes of dynamic dispatch.
func TestApply_Errors(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(1)
	stale := tape.Var(2)
	other := autodiff.NewTape().Var(3)

	tests := []struct {
		name     string
		kind     ops.Kind
		operands []any
		want     error
	}{
		{"string operand", ops.Add, []any{x, "two"}, autodiff.ErrUnsupportedOperandType},
		{"nil operand", ops.Add, []any{x, nil}, autodiff.ErrUnsupportedOperandType},
		{"slice operand", ops.Mul, []any{[]float64{1}, x}, autodiff.ErrUnsupportedOperandType},
		{"no variable", ops.Add, []any{1, 2}, autodiff.ErrNoTape},
		{"zero variable", ops.Add, []any{x, autodiff.Variable{}}, autodiff.ErrNoTape},
		{"too many", ops.Neg, []any{x, x}, autodiff.ErrArity},
		{"too few", ops.Div, []any{x}, autodiff.ErrArity},
		{"leaf", ops.Leaf, nil, autodiff.ErrUnknownOp},
		{"unknown", ops.Kind(200), []any{x}, autodiff.ErrUnknownOp},
		{"mixed tapes", ops.Add, []any{x, other}, autodiff.ErrTapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := autodiff.Apply(tt.kind, tt.operands...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("stale variable", func(t *testing.T) {
		tape.Reset()
		_, err := autodiff.Apply(ops.Add, stale, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, autodiff.ErrStaleVariable), "got %v", err)
	})
}
