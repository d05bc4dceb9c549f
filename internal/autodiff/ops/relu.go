package ops

// ReLU: c = max(0, a).
//
// Backward pass:
//   - dc/da = 1 if a >= 0, else 0
//
// The subgradient at exactly 0 is taken as 1.
func reluForward(a float64) float64 {
	if a > 0 {
		return a
	}
	return 0
}

func reluGrad(a float64) float64 {
	if a >= 0 {
		return 1
	}
	return 0
}
