package ops

import "math"

// Log: c = ln(a).
//
// Backward:
//
//	dc/da = 1 / a
//
// Only defined for a > 0. Callers that may hit zero add a small epsilon
// before taking the log (see nn.BCELoss).
func logForward(a float64) float64 {
	return math.Log(a)
}

func logGrad(a float64) float64 {
	return 1 / a
}
