package corr

import "math"

// Secant finds a root of f near x0 by the secant method. Implicit
// correlations resolve their Nusselt number with it. Returns NaN when no
// root is bracketed within maxiter iterations.
func Secant(f func(float64) float64, x0 float64) float64 {
	const (
		maxiter = 100
		rtol    = 1e-13
	)
	x1 := x0 * (1.0 + 1e-4)
	if x1 == x0 {
		x1 = x0 + 1e-4
	}
	f0 := f(x0)
	f1 := f(x1)
	for i := 0; i < maxiter; i++ {
		if f1 == f0 {
			return x1
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.Abs(x2-x1) <= rtol*math.Abs(x2) {
			return x2
		}
		x0, f0 = x1, f1
		x1 = x2
		f1 = f(x1)
	}
	return math.NaN()
}
