package ops

import "math"

// Sqrt: c = √a.
//
// Backward:
//
//	dc/da = 1 / (2√a) = 0.5 / c
//
// The stored output is reused. At a = 0 the derivative is +Inf.
func sqrtForward(a float64) float64 {
	return math.Sqrt(a)
}

func sqrtGrad(out float64) float64 {
	return 0.5 / out
}
