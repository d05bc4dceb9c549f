package autodiff

import (
	"github.com/born-ml/autograd/internal/parallel"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// Func builds a scalar expression from input variables on a fresh tape.
// It must be deterministic and must only create nodes on t.
type Func func(t *Tape, xs []Variable) Variable

// GradCheckConfig configures CheckGradients.
type GradCheckConfig struct {
	Step     float64         // Finite-difference step (default: 1e-6)
	AbsTol   float64         // Absolute tolerance (default: 1e-5)
	RelTol   float64         // Relative tolerance (default: 1e-4)
	Parallel parallel.Config // Fan-out over inputs
}

// DefaultGradCheckConfig returns tolerances suited to well-scaled float64 expressions.
func DefaultGradCheckConfig() GradCheckConfig {
	return GradCheckConfig{
		Step:     1e-6,
		AbsTol:   1e-5,
		RelTol:   1e-4,
		Parallel: parallel.DefaultConfig(),
	}
}

// GradCheckReport holds both gradient estimates of a check.
type GradCheckReport struct {
	Value    float64   // f evaluated at the check point
	Analytic []float64 // Gradients from Backward
	Numeric  []float64 // Central finite differences
}

// CheckGradients compares the gradients Backward computes for f at the
// point at against central finite differences.
//
// Every function evaluation gets its own tape, which lets the numerical
// derivatives for different inputs run concurrently.
//
// Returns the report and, for the first input that disagrees, an error
// wrapping ErrGradientMismatch. Panics raised by f are returned as errors.
func CheckGradients(f Func, at []float64, cfg GradCheckConfig) (GradCheckReport, error) {
	def := DefaultGradCheckConfig()
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.AbsTol <= 0 {
		cfg.AbsTol = def.AbsTol
	}
	if cfg.RelTol <= 0 {
		cfg.RelTol = def.RelTol
	}

	report := GradCheckReport{
		Analytic: make([]float64, len(at)),
		Numeric:  make([]float64, len(at)),
	}

	err := exceptions.TryCatch[error](func() {
		tape := NewTape()
		xs := make([]Variable, len(at))
		for i, x := range at {
			xs[i] = tape.Var(x)
		}
		out := f(tape, xs)
		report.Value = out.Value()
		out.Backward()
		for i, x := range xs {
			report.Analytic[i] = x.Grad()
		}

	})
	if err != nil {
		return report, errors.WithMessage(err, "gradient check failed to evaluate")
	}

	// Panics in worker goroutines must be caught there.
	settings := &fd.Settings{Formula: fd.Central, Step: cfg.Step}
	evalErrs := make([]error, len(at))
	parallel.For(len(at), func(i int) {
		evalErrs[i] = exceptions.TryCatch[error](func() {
			report.Numeric[i] = fd.Derivative(func(xi float64) float64 {
				return evaluate(f, at, i, xi)
			}, at[i], settings)
		})
	}, cfg.Parallel)
	for i, err := range evalErrs {
		if err != nil {
			return report, errors.WithMessagef(err, "gradient check failed to perturb input #%d", i)
		}
	}

	for i := range at {
		if !scalar.EqualWithinAbsOrRel(report.Analytic[i], report.Numeric[i], cfg.AbsTol, cfg.RelTol) {
			return report, errors.Wrapf(ErrGradientMismatch, "input #%d at %g: analytic %g, numeric %g",
				i, at[i], report.Analytic[i], report.Numeric[i])
		}
	}
	return report, nil
}

// evaluate computes f at the point at with input i replaced by xi.
func evaluate(f Func, at []float64, i int, xi float64) float64 {
	tape := NewTapeWithConfig(Config{InitialCapacity: 16})
	xs := make([]Variable, len(at))
	for j, x := range at {
		if j == i {
			x = xi
		}
		xs[j] = tape.Const(x)
	}
	return f(tape, xs).Value()
}
