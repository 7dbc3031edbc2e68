package external

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// PlateTransitionRe is the laminar to turbulent transition Reynolds
// number for flow over a horizontal flat plate.
const PlateTransitionRe = 5e5

// PlateInput carries the inputs for forced convection over a horizontal
// flat plate. ReTransition overrides the laminar/turbulent threshold;
// zero means PlateTransitionRe.
type PlateInput struct {
	Re           float64
	Pr           float64
	ReTransition float64
}

func (in PlateInput) transition() float64 {
	if in.ReTransition > 0 {
		return in.ReTransition
	}
	return PlateTransitionRe
}

func (in PlateInput) turbulent() bool {
	return in.Re >= in.transition()
}

// NuPlateLaminarBaehr returns Nu for laminar flow over a plate per
// Baehr and Stephan, Pr-banded for liquid metals through viscous oils.
func NuPlateLaminarBaehr(Re, Pr float64) float64 {
	switch {
	case Pr < 0.005:
		return 1.128 * math.Sqrt(Re*Pr)
	case Pr < 0.05:
		return math.Sqrt(Re * Pr)
	case Pr < 10.0:
		return 0.664 * math.Sqrt(Re) * math.Cbrt(Pr)
	default:
		return 0.678 * math.Sqrt(Re) * math.Cbrt(Pr)
	}
}

// NuPlateLaminarChurchillOzoe returns Nu for laminar flow over a plate
// per Churchill and Ozoe (1973), one smooth expression in Pr.
func NuPlateLaminarChurchillOzoe(Re, Pr float64) float64 {
	return 0.6774 * math.Sqrt(Re) * math.Cbrt(Pr) *
		math.Pow(1.0+math.Pow(0.0468/Pr, 2.0/3.0), -0.25)
}

// NuPlateTurbulentSchlichting returns Nu for turbulent flow over a
// plate per Schlichting.
func NuPlateTurbulentSchlichting(Re, Pr float64) float64 {
	num := 0.037 * math.Pow(Re, 0.8) * Pr
	den := 1.0 + 2.443*math.Pow(Re, -0.1)*(math.Pow(Pr, 2.0/3.0)-1.0)
	return num / den
}

// NuPlateTurbulentKreith returns Nu for turbulent flow over a plate per
// Kreith (1962).
func NuPlateTurbulentKreith(Re, Pr float64) float64 {
	return 0.036 * math.Cbrt(Pr) * math.Pow(Re, 0.8)
}

var plateRegistry = corr.NewConditional("external horizontal plate",
	[]string{"Baehr", "Schlichting"},
	func(in PlateInput) string {
		if in.turbulent() {
			return "Schlichting"
		}
		return "Baehr"
	},
	[]corr.Method[PlateInput]{
		{
			Name:     "Baehr",
			Fn:       func(in PlateInput) float64 { return NuPlateLaminarBaehr(in.Re, in.Pr) },
			InRegime: func(in PlateInput) bool { return !in.turbulent() },
		},
		{
			Name:     "Churchill Ozoe",
			Fn:       func(in PlateInput) float64 { return NuPlateLaminarChurchillOzoe(in.Re, in.Pr) },
			InRegime: func(in PlateInput) bool { return !in.turbulent() },
		},
		{
			Name:     "Schlichting",
			Fn:       func(in PlateInput) float64 { return NuPlateTurbulentSchlichting(in.Re, in.Pr) },
			InRegime: func(in PlateInput) bool { return in.turbulent() },
		},
		{
			Name:     "Kreith",
			Fn:       func(in PlateInput) float64 { return NuPlateTurbulentKreith(in.Re, in.Pr) },
			InRegime: func(in PlateInput) bool { return in.turbulent() },
		},
	})

// PlateMethods returns the applicable method names for forced
// convection over a horizontal plate. With checkRanges only the regime
// bucket selected by Re is returned; without it the full catalogue.
func PlateMethods(in PlateInput, checkRanges bool) []string {
	return plateRegistry.Methods(in, checkRanges)
}

// Plate evaluates Nu for forced convection over a horizontal plate.
// With an empty method the regime default is used: Baehr below the
// transition Reynolds number, Schlichting at or above it.
func Plate(in PlateInput, method string) (float64, error) {
	return plateRegistry.Evaluate(in, method)
}
