// Package freeconv provides free (natural) convection correlations for
// immersed bodies (vertical and horizontal plates, vertical and
// horizontal cylinders, spheres) and for enclosed cavities. Each
// scenario exposes an enumerator of applicable methods and an evaluator
// dispatching on a method name; the regime discriminator throughout is
// the Rayleigh number Ra = Gr*Pr.
package freeconv

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// VerticalPlateInput carries the inputs for free convection from a
// vertical isothermal plate.
type VerticalPlateInput struct {
	Pr float64
	Gr float64
}

// NuVerticalPlateChurchill returns Nu for free convection from a
// vertical plate per Churchill and Chu (1975). One smooth expression
// covers the laminar and turbulent ranges up to Ra of 1E12.
func NuVerticalPlateChurchill(Pr, Gr float64) float64 {
	Ra := Pr * Gr
	term := 0.825 + 0.387*math.Pow(Ra, 1.0/6.0)*
		math.Pow(1.0+math.Pow(0.492/Pr, 9.0/16.0), -8.0/27.0)
	return term * term
}

var verticalPlateRegistry = corr.New("free vertical plate", "Churchill",
	[]corr.Method[VerticalPlateInput]{
		{
			Name: "Churchill",
			Fn: func(in VerticalPlateInput) float64 {
				return NuVerticalPlateChurchill(in.Pr, in.Gr)
			},
		},
	})

// VerticalPlateMethods returns the applicable method names for free
// convection from a vertical plate.
func VerticalPlateMethods(in VerticalPlateInput, checkRanges bool) []string {
	return verticalPlateRegistry.Methods(in, checkRanges)
}

// VerticalPlate evaluates Nu for free convection from a vertical plate
// with the named method, or Churchill when method is empty.
func VerticalPlate(in VerticalPlateInput, method string) (float64, error) {
	return verticalPlateRegistry.Evaluate(in, method)
}
