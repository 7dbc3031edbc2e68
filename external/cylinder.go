// Package external provides forced-convection correlations for flow over
// external surfaces: cylinders in crossflow and horizontal flat plates.
// Each scenario exposes an enumerator of applicable methods and an
// evaluator dispatching on a method name.
package external

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// CylinderInput carries the inputs for crossflow over a cylinder. Prw,
// Mu and MuW are optional; when present they switch on the wall
// correction of the methods that accept them.
type CylinderInput struct {
	Re  float64
	Pr  float64
	Prw *float64 // wall Prandtl number (Zukauskas)
	Mu  *float64 // bulk viscosity, Pa*s
	MuW *float64 // wall viscosity, Pa*s
}

// NuCylinderSanitjaiGoldstein returns Nu for crossflow over a cylinder
// per Sanitjai and Goldstein (2004), valid over the full range of
// published data (2E3 < Re < 9E4, 0.7 < Pr < 176).
func NuCylinderSanitjaiGoldstein(Re, Pr float64) float64 {
	return 0.446*math.Pow(Re, 0.5)*math.Pow(Pr, 0.35) +
		0.528*math.Pow(math.Pow(6.5, -5)*math.Exp(-5*Re/5000.0)+
			math.Pow(0.031*math.Pow(Re, 0.8), -5), -0.2)*math.Pow(Pr, 0.42)
}

// NuCylinderChurchillBernstein returns Nu per the Churchill-Bernstein
// (1977) equation, a single smooth expression covering all Re and Pr.
func NuCylinderChurchillBernstein(Re, Pr float64) float64 {
	return 0.3 + 0.62*math.Pow(Re, 0.5)*math.Cbrt(Pr)/
		math.Pow(1.0+math.Pow(0.4/Pr, 2.0/3.0), 0.25)*
		math.Pow(1.0+math.Pow(Re/282000.0, 0.625), 0.8)
}

// NuCylinderZukauskas returns Nu per Zukauskas (1972). The coefficient
// pair is Re-banded; above the last documented band the highest-band
// pair is used. Prw, when given, applies the (Pr/Prw)^0.25 wall
// correction.
func NuCylinderZukauskas(Re, Pr float64, Prw *float64) float64 {
	var c, m float64
	switch {
	case Re <= 40:
		c, m = 0.75, 0.4
	case Re < 1e3:
		c, m = 0.51, 0.5
	case Re < 2e5:
		c, m = 0.26, 0.6
	default:
		c, m = 0.076, 0.7
	}
	n := 0.37
	if Pr > 10.0 {
		n = 0.36
	}
	Nu := c * math.Pow(Re, m) * math.Pow(Pr, n)
	if Prw != nil {
		Nu *= math.Pow(Pr / *Prw, 0.25)
	}
	return Nu
}

// NuCylinderWhitaker returns Nu per Whitaker (1972), with the
// (mu/muw)^0.25 correction applied when both viscosities are given.
func NuCylinderWhitaker(Re, Pr float64, mu, muw *float64) float64 {
	Nu := (0.4*math.Pow(Re, 0.5) + 0.06*math.Pow(Re, 2.0/3.0)) * math.Pow(Pr, 0.3)
	if mu != nil && muw != nil {
		Nu *= math.Pow(*mu / *muw, 0.25)
	}
	return Nu
}

// NuCylinderFand returns Nu per Fand (1965).
func NuCylinderFand(Re, Pr float64) float64 {
	return (0.35 + 0.34*math.Pow(Re, 0.5) + 0.15*math.Pow(Re, 0.58)) * math.Pow(Pr, 0.3)
}

// NuCylinderMcAdams returns Nu per McAdams (1954).
func NuCylinderMcAdams(Re, Pr float64) float64 {
	return (0.35 + 0.56*math.Pow(Re, 0.52)) * math.Pow(Pr, 0.3)
}

// NuCylinderPerkinsLeppert1962 returns Nu per Perkins and Leppert
// (1962), with the optional viscosity-ratio correction.
func NuCylinderPerkinsLeppert1962(Re, Pr float64, mu, muw *float64) float64 {
	Nu := (0.30*math.Pow(Re, 0.5) + 0.10*math.Pow(Re, 0.67)) * math.Pow(Pr, 0.4)
	if mu != nil && muw != nil {
		Nu *= math.Pow(*mu / *muw, 0.25)
	}
	return Nu
}

// NuCylinderPerkinsLeppert1964 returns Nu per Perkins and Leppert
// (1964), with the optional viscosity-ratio correction.
func NuCylinderPerkinsLeppert1964(Re, Pr float64, mu, muw *float64) float64 {
	Nu := (0.31*math.Pow(Re, 0.5) + 0.11*math.Pow(Re, 0.67)) * math.Pow(Pr, 0.4)
	if mu != nil && muw != nil {
		Nu *= math.Pow(*mu / *muw, 0.25)
	}
	return Nu
}

func hasWallViscosity(in CylinderInput) bool {
	return in.Mu != nil && in.MuW != nil
}

var cylinderRegistry = corr.New("external cylinder", "Sanitjai-Goldstein",
	[]corr.Method[CylinderInput]{
		{
			Name: "Sanitjai-Goldstein",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderSanitjaiGoldstein(in.Re, in.Pr)
			},
		},
		{
			Name: "Churchill-Bernstein",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderChurchillBernstein(in.Re, in.Pr)
			},
		},
		{
			Name: "Zukauskas",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderZukauskas(in.Re, in.Pr, in.Prw)
			},
			Applicable: func(in CylinderInput) bool { return in.Prw != nil },
		},
		{
			Name: "Whitaker",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderWhitaker(in.Re, in.Pr, in.Mu, in.MuW)
			},
			Applicable: hasWallViscosity,
		},
		{
			Name: "Perkins-Leppert 1964",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderPerkinsLeppert1964(in.Re, in.Pr, in.Mu, in.MuW)
			},
			Applicable: hasWallViscosity,
		},
		{
			Name: "McAdams",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderMcAdams(in.Re, in.Pr)
			},
		},
		{
			Name: "Fand",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderFand(in.Re, in.Pr)
			},
		},
		{
			Name: "Perkins-Leppert 1962",
			Fn: func(in CylinderInput) float64 {
				return NuCylinderPerkinsLeppert1962(in.Re, in.Pr, in.Mu, in.MuW)
			},
			Applicable: hasWallViscosity,
		},
	})

// CylinderMethods returns the applicable method names for crossflow
// over a cylinder, most recommended first. With checkRanges, methods
// whose wall-property inputs are absent are dropped.
func CylinderMethods(in CylinderInput, checkRanges bool) []string {
	return cylinderRegistry.Methods(in, checkRanges)
}

// Cylinder evaluates Nu for crossflow over a cylinder with the named
// method, or the default Sanitjai-Goldstein when method is empty.
func Cylinder(in CylinderInput, method string) (float64, error) {
	return cylinderRegistry.Evaluate(in, method)
}
