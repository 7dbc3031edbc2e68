package freeconv

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// VerticalCylinderInput carries the inputs for free convection from a
// vertical isothermal cylinder. L and D are optional; when both are
// given the geometry-aware correlations become available and the
// default switches to Popiel & Churchill.
type VerticalCylinderInput struct {
	Pr float64
	Gr float64
	L  *float64 // cylinder length, m
	D  *float64 // cylinder diameter, m
}

// turbulentRegime resolves the tri-state turbulence override the
// vertical cylinder correlations accept: a non-nil force wins, else the
// correlation's own Ra threshold decides.
func turbulentRegime(force *bool, auto bool) bool {
	if force != nil {
		return *force
	}
	return auto
}

// NuVerticalCylinderGriffithsDavisMorgan returns Nu per the Griffiths
// and Davis (1922) data correlated by Morgan (1975).
func NuVerticalCylinderGriffithsDavisMorgan(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 1e9) {
		return 0.0782 * math.Pow(Ra, 0.357)
	}
	return 0.67 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderJakobLinkeMorgan returns Nu per the Jakob and Linke
// (1933) data correlated by Morgan (1975).
func NuVerticalCylinderJakobLinkeMorgan(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 1e8) {
		return 0.129 * math.Pow(Ra, 1.0/3.0)
	}
	return 0.555 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderCarneMorgan returns Nu per the Carne (1937) data
// correlated by Morgan (1975).
func NuVerticalCylinderCarneMorgan(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 2e8) {
		return 0.152 * math.Pow(Ra, 0.38)
	}
	return 1.07 * math.Pow(Ra, 0.28)
}

// NuVerticalCylinderEigensonMorgan returns Nu per the Eigenson (1940)
// data correlated by Morgan (1975). Three Ra bands; the middle band is
// used only under automatic regime selection.
func NuVerticalCylinderEigensonMorgan(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 1.69e10) {
		return 0.148*math.Pow(Ra, 1.0/3.0) - 127.6
	}
	if turbulent == nil && Ra > 1e9 && Ra < 1.69e10 {
		return 51.5 + 0.0000726*math.Pow(Ra, 0.63)
	}
	return 0.48 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderTouloukianMorgan returns Nu per the Touloukian
// (1948) data correlated by Morgan (1975).
func NuVerticalCylinderTouloukianMorgan(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 4e10) {
		return 0.0674 * math.Pow(Gr*math.Pow(Pr, 1.29), 1.0/3.0)
	}
	return 0.726 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderMcAdamsWeissSaunders returns Nu per the McAdams,
// Weiss and Saunders data correlated by Morgan (1975).
func NuVerticalCylinderMcAdamsWeissSaunders(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 1e9) {
		return 0.13 * math.Pow(Ra, 1.0/3.0)
	}
	return 0.59 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderKreithEckert returns Nu per the Kreith and Eckert
// data correlated by Morgan (1975).
func NuVerticalCylinderKreithEckert(Pr, Gr float64, turbulent *bool) float64 {
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 1e9) {
		return 0.021 * math.Pow(Ra, 0.4)
	}
	return 0.555 * math.Pow(Ra, 0.25)
}

// NuVerticalCylinderHanesianKalishMorgan returns Nu per the Hanesian
// and Kalish (1970) data correlated by Morgan (1975). Laminar range
// only.
func NuVerticalCylinderHanesianKalishMorgan(Pr, Gr float64) float64 {
	Ra := Pr * Gr
	return 0.48 * math.Pow(Ra, 0.23)
}

// NuVerticalCylinderAlArabiKhamis returns Nu per Al-Arabi and Khamis
// (1982). Requires the cylinder length and diameter for the
// diameter-based Grashof correction.
func NuVerticalCylinderAlArabiKhamis(Pr, Gr, L, D float64, turbulent *bool) float64 {
	GrD := Gr / (L * L * L) * (D * D * D)
	Ra := Pr * Gr
	if turbulentRegime(turbulent, Ra > 2.6e9) {
		return 0.47 * math.Pow(Ra, 1.0/3.0) * math.Pow(GrD, -1.0/12.0)
	}
	return 2.9 * math.Pow(Ra, 0.25) * math.Pow(GrD, -1.0/12.0)
}

// NuVerticalCylinderPopielChurchill returns Nu per Popiel (2008),
// correcting the Churchill vertical plate solution for cylinder
// curvature. Laminar range (Ra up to about 1E9).
func NuVerticalCylinderPopielChurchill(Pr, Gr, L, D float64) float64 {
	B := 0.0571322 + 0.20305*math.Pow(Pr, -0.43)
	C := 0.9165 - 0.0043*math.Sqrt(Pr) + 0.01333*math.Log(Pr) + 0.0004809/Pr
	nuPlate := NuVerticalPlateChurchill(Pr, Gr)
	return nuPlate * (1.0 + B*math.Pow(math.Sqrt(32.0)*math.Pow(Gr, -0.25)*L/D, C))
}

func missingGeometry(in VerticalCylinderInput) []string {
	var missing []string
	if in.L == nil {
		missing = append(missing, "L")
	}
	if in.D == nil {
		missing = append(missing, "D")
	}
	return missing
}

var verticalCylinderRegistry = corr.NewConditional("free vertical cylinder",
	[]string{"Popiel & Churchill", "McAdams, Weiss & Saunders"},
	func(in VerticalCylinderInput) string {
		if in.L != nil && in.D != nil {
			return "Popiel & Churchill"
		}
		return "McAdams, Weiss & Saunders"
	},
	[]corr.Method[VerticalCylinderInput]{
		{
			Name: "Popiel & Churchill",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderPopielChurchill(in.Pr, in.Gr, *in.L, *in.D)
			},
			Missing: missingGeometry,
		},
		{
			Name: "Churchill Vertical Plate",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalPlateChurchill(in.Pr, in.Gr)
			},
		},
		{
			Name: "Griffiths, Davis, & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderGriffithsDavisMorgan(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Jakob, Linke, & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderJakobLinkeMorgan(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Carne & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderCarneMorgan(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Eigenson & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderEigensonMorgan(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Touloukian & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderTouloukianMorgan(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "McAdams, Weiss & Saunders",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderMcAdamsWeissSaunders(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Kreith & Eckert",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderKreithEckert(in.Pr, in.Gr, nil)
			},
		},
		{
			Name: "Hanesian, Kalish & Morgan",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderHanesianKalishMorgan(in.Pr, in.Gr)
			},
		},
		{
			Name: "Al-Arabi & Khamis",
			Fn: func(in VerticalCylinderInput) float64 {
				return NuVerticalCylinderAlArabiKhamis(in.Pr, in.Gr, *in.L, *in.D, nil)
			},
			Missing: missingGeometry,
		},
	})

// VerticalCylinderMethods returns the applicable method names for free
// convection from a vertical cylinder, most recommended first. The
// geometry-aware correlations are listed only when L and D are given.
func VerticalCylinderMethods(in VerticalCylinderInput, checkRanges bool) []string {
	return verticalCylinderRegistry.Methods(in, checkRanges)
}

// VerticalCylinder evaluates Nu for free convection from a vertical
// cylinder. With an empty method the default is Popiel & Churchill when
// L and D are both given, else McAdams, Weiss & Saunders.
func VerticalCylinder(in VerticalCylinderInput, method string) (float64, error) {
	return verticalCylinderRegistry.Evaluate(in, method)
}
