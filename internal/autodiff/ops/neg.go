package ops

// Neg: c = -a, dc/da = -1.
func negForward(a float64) float64 {
	return -a
}

func negGrad() float64 {
	return -1
}
