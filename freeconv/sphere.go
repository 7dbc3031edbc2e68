package freeconv

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// SphereInput carries the inputs for free convection from an isothermal
// sphere.
type SphereInput struct {
	Pr float64
	Gr float64
}

// NuSphereChurchill returns Nu for free convection from a sphere per
// Churchill (1983). Good for Ra below 1E13; the limit at vanishing
// Grashof number is 2.
func NuSphereChurchill(Pr, Gr float64) float64 {
	Ra := Pr * Gr
	f := 1.0 + math.Pow(0.469/Pr, 9.0/16.0)
	return 2.0 + 0.589*math.Pow(Ra, 0.25)/math.Pow(f, 4.0/9.0)*
		math.Pow(1.0+7.44e-8*Ra/math.Pow(f, 16.0/9.0), 1.0/12.0)
}

var sphereRegistry = corr.New("free sphere", "Churchill",
	[]corr.Method[SphereInput]{
		{
			Name: "Churchill",
			Fn: func(in SphereInput) float64 {
				return NuSphereChurchill(in.Pr, in.Gr)
			},
		},
	})

// SphereMethods returns the applicable method names for free convection
// from a sphere.
func SphereMethods(in SphereInput, checkRanges bool) []string {
	return sphereRegistry.Methods(in, checkRanges)
}

// Sphere evaluates Nu for free convection from a sphere with the named
// method, or Churchill when method is empty.
func Sphere(in SphereInput, method string) (float64, error) {
	return sphereRegistry.Evaluate(in, method)
}
