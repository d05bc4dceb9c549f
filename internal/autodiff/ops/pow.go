package ops

import "math"

// Pow: c = a ^ b.
//
// Backward pass:
//   - dc/da = b * a^(b-1)
//   - dc/db = a^b * ln(a)
//
// ln(a) is NaN for negative bases. The engine never multiplies it in when the
// exponent does not require a gradient, so x.PowScalar(2) is fine for x < 0.
func powForward(a, b float64) float64 {
	return math.Pow(a, b)
}

func powGrads(a, b, out float64) (da, db float64) {
	da = b * math.Pow(a, b-1)
	db = out * math.Log(a)
	return da, db
}
