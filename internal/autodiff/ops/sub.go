package ops

// Sub: c = a - b.
//
// Backward pass:
//   - dc/da = 1
//   - dc/db = -1
func subForward(a, b float64) float64 {
	return a - b
}

func subGrads() (da, db float64) {
	return 1, -1
}
