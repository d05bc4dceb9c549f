package ops

import "math"

// Sigmoid: σ(a) = 1 / (1 + exp(-a)).
//
// dσ/da = σ(a) * (1 - σ(a)). Since σ(a) is the stored output,
// the derivative is computed from it directly.
func sigmoidForward(a float64) float64 {
	// Split on the sign so exp never overflows.
	if a >= 0 {
		return 1 / (1 + math.Exp(-a))
	}
	e := math.Exp(a)
	return e / (1 + e)
}

func sigmoidGrad(out float64) float64 {
	return out * (1 - out)
}
