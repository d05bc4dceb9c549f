package autodiff_test

import (
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/parallel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckGradients_Ops compares every operation against finite differences.
// Inputs keep away from kinks (relu at 0) and domain edges (log, pow, sqrt).
func TestCheckGradients_Ops(t *testing.T) {
	tests := []struct {
		name string
		f    autodiff.Func
		at   []float64
	}{
		{"add", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Add(xs[1])
		}, []float64{1.5, -2}},
		{"sub", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Sub(xs[1])
		}, []float64{1.5, -2}},
		{"mul", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Mul(xs[1])
		}, []float64{1.5, -2}},
		{"div", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Div(xs[1])
		}, []float64{1.5, -2}},
		{"pow", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Pow(xs[1])
		}, []float64{1.7, 2.3}},
		{"neg", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Neg()
		}, []float64{0.3}},
		{"log", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Log()
		}, []float64{0.7}},
		{"exp", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Exp()
		}, []float64{0.7}},
		{"relu", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].ReLU().Add(xs[1].ReLU())
		}, []float64{0.7, -0.4}},
		{"sigmoid", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Sigmoid()
		}, []float64{-1.2}},
		{"tanh", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Tanh()
		}, []float64{0.4}},
		{"sqrt", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Sqrt()
		}, []float64{2.5}},
		{"sin_cos", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].Sin().Mul(xs[1].Cos())
		}, []float64{0.9, -2.1}},
		{"silu", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			return xs[0].SiLU().Add(xs[1].SiLU())
		}, []float64{1.3, -0.6}},
		{"shared", func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			x, y := xs[0], xs[1]
			u := x.Mul(y)
			return u.Mul(u).Add(u.Sigmoid()).Sub(y.DivScalar(3))
		}, []float64{0.8, -1.1}},
		{"composite", func(tape *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
			x, y, z := xs[0], xs[1], xs[2]
			num := x.Mul(y).Add(z.Exp())
			den := autodiff.Constant(tape, 2).Add(x.Mul(x))
			return num.Div(den).Tanh().Add(y.PowScalar(3).Log())
		}, []float64{0.5, 1.3, -0.2}},
	}

	configs := map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 4, MinItems: 1},
	}
	for name, par := range configs {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				cfg := autodiff.DefaultGradCheckConfig()
				cfg.Parallel = par
				report, err := autodiff.CheckGradients(tt.f, tt.at, cfg)
				require.NoError(t, err)
				assert.Len(t, report.Analytic, len(tt.at))
				assert.Len(t, report.Numeric, len(tt.at))
			})
		}
	}
}

// TestCheckGradients_Mismatch uses a detached operand, which hides part of
// the derivative from Backward.
func TestCheckGradients_Mismatch(t *testing.T) {
	f := func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
		return xs[0].Detach().Mul(xs[0])
	}

	report, err := autodiff.CheckGradients(f, []float64{3}, autodiff.DefaultGradCheckConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, autodiff.ErrGradientMismatch))
	assert.InDelta(t, 9.0, report.Value, 1e-12)
	assert.InDelta(t, 3.0, report.Analytic[0], 1e-12)
	assert.InDelta(t, 6.0, report.Numeric[0], 1e-4)
}

// TestCheckGradients_Panics turns panics raised by f into errors.
func TestCheckGradients_Panics(t *testing.T) {
	f := func(_ *autodiff.Tape, xs []autodiff.Variable) autodiff.Variable {
		return autodiff.Sum()
	}

	_, err := autodiff.CheckGradients(f, []float64{1, 2}, autodiff.DefaultGradCheckConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, autodiff.ErrArity))
}
