package ops

import "math"

// Cos: c = cos(a), dc/da = -sin(a).
func cosForward(a float64) float64 {
	return math.Cos(a)
}

func cosGrad(a float64) float64 {
	return -math.Sin(a)
}
