package ops

// SiLU (Swish): c = a * σ(a).
//
// Backward:
//
//	dc/da = σ(a) + a * σ(a) * (1 - σ(a))
//	      = σ(a) * (1 + a * (1 - σ(a)))
func siluForward(a float64) float64 {
	return a * sigmoidForward(a)
}

func siluGrad(a float64) float64 {
	s := sigmoidForward(a)
	return s * (1 + a*(1-s))
}
