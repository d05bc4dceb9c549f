package ops

// Mul: c = a * b.
//
// Backward pass:
//   - dc/da = b
//   - dc/db = a
//
// For x*x both operands are the same node and each edge contributes x,
// which sums to the expected 2x.
func mulForward(a, b float64) float64 {
	return a * b
}

func mulGrads(a, b float64) (da, db float64) {
	return b, a
}
