// Package plateex provides heat transfer correlations for chevron-type
// plate and frame heat exchangers: single-phase flow between plates and
// two-phase flow boiling.
package plateex

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// Chevron angles of the plate geometries Kumar published coefficients
// for. A plate falls in the first row whose angle is not below its own;
// steeper plates use the last row.
var kumarAngles = []float64{30, 45, 50, 60, 65}

// Re band upper bounds per chevron row, with the C1 and m coefficient
// options for each band. Reynolds numbers above the last bound use the
// last entry.
var (
	kumarReBounds = [][]float64{
		{10.0},
		{10.0, 100.0},
		{20.0, 300.0},
		{20.0, 400.0},
		{20.0, 500.0},
	}
	kumarC1s = [][]float64{
		{0.718, 0.348},
		{0.718, 0.400, 0.300},
		{0.630, 0.291, 0.130},
		{0.562, 0.306, 0.108},
		{0.562, 0.331, 0.087},
	}
	kumarMs = [][]float64{
		{0.349, 0.663},
		{0.349, 0.598, 0.663},
		{0.333, 0.591, 0.732},
		{0.326, 0.529, 0.703},
		{0.326, 0.503, 0.718},
	}
)

// SinglePhaseInput carries the inputs for single-phase flow in a
// chevron plate exchanger. The Reynolds number uses the standard
// hydraulic diameter. Mu and MuWall are optional; both together apply
// the viscosity-ratio correction.
type SinglePhaseInput struct {
	Re           float64
	Pr           float64
	ChevronAngle float64 // degrees from the vertical flow axis
	Mu           *float64
	MuWall       *float64
}

// NuPlateKumar returns Nu for single-phase flow in a well designed
// chevron plate exchanger per Kumar (1984). The chevron angle selects a
// coefficient row; within the row the Reynolds number selects a band,
// extrapolating with the last band above the documented range.
func NuPlateKumar(Re, Pr, chevronAngle float64, mu, muWall *float64) float64 {
	row := len(kumarAngles) - 1
	for i, angle := range kumarAngles {
		if chevronAngle <= angle {
			row = i
			break
		}
	}
	bounds := kumarReBounds[row]
	band := len(bounds) // above every bound: extrapolate with the last set
	for j, bound := range bounds {
		if Re <= bound {
			band = j
			break
		}
	}
	C1, m := kumarC1s[row][band], kumarMs[row][band]
	Nu := C1 * math.Pow(Re, m) * math.Pow(Pr, 0.33)
	if mu != nil && muWall != nil {
		Nu *= math.Pow(*mu / *muWall, 0.17)
	}
	return Nu
}

var singlePhaseRegistry = corr.New("plate exchanger single-phase", "Kumar",
	[]corr.Method[SinglePhaseInput]{
		{
			Name: "Kumar",
			Fn: func(in SinglePhaseInput) float64 {
				return NuPlateKumar(in.Re, in.Pr, in.ChevronAngle, in.Mu, in.MuWall)
			},
		},
	})

// SinglePhaseMethods returns the applicable method names for
// single-phase plate exchanger flow.
func SinglePhaseMethods(in SinglePhaseInput, checkRanges bool) []string {
	return singlePhaseRegistry.Methods(in, checkRanges)
}

// SinglePhase evaluates Nu for single-phase plate exchanger flow with
// the named method, or Kumar when method is empty.
func SinglePhase(in SinglePhaseInput, method string) (float64, error) {
	return singlePhaseRegistry.Evaluate(in, method)
}
