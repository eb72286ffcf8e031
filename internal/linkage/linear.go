package linkage

// LinearFunction is a*alpha+b: the interpolated distance between one pair of
// active clusters, as a function of alpha, given the pair's distance at
// alpha=0 (B) and alpha=1 (A+B).
type LinearFunction struct {
	A, B float64
}

// Eval returns the function's value at alpha.
func (f LinearFunction) Eval(alpha float64) float64 {
	return f.A*alpha + f.B
}
