package ops

import "math"

// Tanh: c = tanh(a), dc/da = 1 - tanh²(a).
func tanhForward(a float64) float64 {
	return math.Tanh(a)
}

func tanhGrad(out float64) float64 {
	return 1 - out*out
}
