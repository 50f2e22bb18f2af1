package integrators

import "math"

// singularityEps bounds |x/s| below which the analytic limit replaces
// the direct formula.
const singularityEps = 1e-7

// ExpRatio computes x / (1 - exp(-x/s)), the form of the
// Hodgkin-Huxley alpha rate functions. The direct formula divides by
// zero at x = 0; near it the continuous limit s + x/2 is used instead,
// so the result is always finite.
func ExpRatio(x, s float64) float64 {
	u := x / s
	if math.Abs(u) < singularityEps {
		return s + 0.5*x
	}
	return x / (1 - math.Exp(-u))
}

// ExpDecay computes amp * exp(-x/s), the form of the beta rate
// functions. Provided for symmetry with ExpRatio.
func ExpDecay(amp, x, s float64) float64 {
	return amp * math.Exp(-x/s)
}

// Sigmoid computes 1 / (1 + exp(-x/s)).
func Sigmoid(x, s float64) float64 {
	return 1 / (1 + math.Exp(-x/s))
}
