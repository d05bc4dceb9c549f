package ops

import "math"

// Sin: c = sin(a), dc/da = cos(a).
func sinForward(a float64) float64 {
	return math.Sin(a)
}

func sinGrad(a float64) float64 {
	return math.Cos(a)
}
