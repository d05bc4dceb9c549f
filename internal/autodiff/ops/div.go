package ops

// Div: c = a / b.
//
// Backward pass:
//   - dc/da = 1/b
//   - dc/db = -a/b²
//
// A zero divisor follows IEEE-754: the value and both derivatives become
// ±Inf or NaN and propagate from there.
func divForward(a, b float64) float64 {
	return a / b
}

func divGrads(a, b float64) (da, db float64) {
	return 1 / b, -a / (b * b)
}
