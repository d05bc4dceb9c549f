// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Tape: arena that owns every node created while composing variables
//   - Variable: lightweight handle to one node of a Tape
//   - ops.Kind: tagged variant selecting each node's forward function and
//     closed-form local derivative
//   - Engine: Backward orders the subgraph reachable from a root and applies
//     the chain rule, summing contributions over every path
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Var(5)
//	y := tape.Var(3)
//	z := y.Mul(x).Mul(x).Add(x.Mul(y).Mul(y))
//
//	z.Backward()
//	fmt.Println(z.Value(), x.Grad(), y.Grad()) // 120 39 55
//
// Gradients accumulate: calling Backward twice on the same root doubles them.
// Use Tape.ZeroGrad or Variable.ZeroGrad to reset between passes.
//
// A Tape is not safe for concurrent use. Independent tapes may be used from
// different goroutines.
package autodiff

// Config holds tape configuration.
type Config struct {
	// InitialCapacity pre-allocates the node arena (default: 64).
	InitialCapacity int

	// WarnNonFinite logs a warning for every leaf whose gradient comes out
	// NaN or ±Inf after a backward pass.
	WarnNonFinite bool
}

// DefaultConfig returns the configuration used by NewTape.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 64,
	}
}
