package freeconv

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// HorizontalPlateInput carries the inputs for free convection from a
// horizontal isothermal plate. Buoyancy marks the buoyancy-assisted
// orientation: a hot plate facing up, where rising fluid enhances the
// convection, as opposed to a cold plate the fluid settles onto.
type HorizontalPlateInput struct {
	Pr       float64
	Gr       float64
	Buoyancy bool
}

// NuHorizontalPlateMcAdams returns Nu for free convection from a
// horizontal plate per McAdams (1954).
func NuHorizontalPlateMcAdams(Pr, Gr float64, buoyancy bool) float64 {
	Ra := Pr * Gr
	if buoyancy {
		if Ra <= 1e7 {
			return 0.54 * math.Pow(Ra, 0.25)
		}
		return 0.15 * math.Pow(Ra, 1.0/3.0)
	}
	if Ra <= 1e10 {
		return 0.27 * math.Pow(Ra, 0.25)
	}
	return 0.15 * math.Pow(Ra, 1.0/3.0)
}

// NuHorizontalPlateVDI returns Nu for free convection from a horizontal
// plate per the VDI Heat Atlas.
func NuHorizontalPlateVDI(Pr, Gr float64, buoyancy bool) float64 {
	Ra := Pr * Gr
	if buoyancy {
		f2 := math.Pow(1.0+math.Pow(0.322/Pr, 11.0/20.0), 20.0/11.0)
		if Ra*f2 < 7e4 {
			return 0.766 * math.Pow(Ra*f2, 0.2)
		}
		return 0.15 * math.Pow(Ra*f2, 1.0/3.0)
	}
	f1 := math.Pow(1.0+math.Pow(0.492/Pr, 9.0/16.0), -16.0/9.0)
	return 0.6 * math.Pow(Ra*f1, 0.2)
}

// NuHorizontalPlateRohsenow returns Nu for free convection from a
// horizontal plate per Rohsenow, Hartnett, and Cho (1998). The
// buoyancy-assisted branch blends the laminar and turbulent solutions
// with a tenth-power mean.
func NuHorizontalPlateRohsenow(Pr, Gr float64, buoyancy bool) float64 {
	Ra := Pr * Gr
	if buoyancy {
		ctU := 0.14 * (1.0 + 0.01707*Pr) / (1.0 + 0.01*Pr)
		ctV := 0.13 * math.Pow(Pr, 0.22) / math.Pow(1.0+0.61*math.Pow(Pr, 0.81), 0.42)

		// Flat isothermal plate: heated area fraction 1, no vertical extent.
		t1, t2 := 1.0, 0.0
		cl := 0.0972 - (0.0157+0.462*ctV)*t1 + (0.615*ctV-0.0548-6e-6*Pr)*t2

		nuT := 0.835 * cl * math.Pow(Ra, 0.25)
		nuL := 1.4 / math.Log(1.0+1.4/nuT)
		nuTurb := ctU * math.Pow(Ra, 1.0/3.0)

		const m = 10.0
		return math.Pow(math.Pow(nuL, m)+math.Pow(nuTurb, m), 1.0/m)
	}
	nuT := 0.527 * math.Pow(Ra, 0.2) / math.Pow(1.0+math.Pow(1.9/Pr, 0.9), 2.0/9.0)
	return 2.5 / math.Log(1.0+2.5/nuT)
}

var horizontalPlateRegistry = corr.New("free horizontal plate", "VDI",
	[]corr.Method[HorizontalPlateInput]{
		{
			Name: "VDI",
			Fn: func(in HorizontalPlateInput) float64 {
				return NuHorizontalPlateVDI(in.Pr, in.Gr, in.Buoyancy)
			},
		},
		{
			Name: "McAdams",
			Fn: func(in HorizontalPlateInput) float64 {
				return NuHorizontalPlateMcAdams(in.Pr, in.Gr, in.Buoyancy)
			},
		},
		{
			Name: "Rohsenow",
			Fn: func(in HorizontalPlateInput) float64 {
				return NuHorizontalPlateRohsenow(in.Pr, in.Gr, in.Buoyancy)
			},
		},
	})

// HorizontalPlateMethods returns the applicable method names for free
// convection from a horizontal plate, most recommended first.
func HorizontalPlateMethods(in HorizontalPlateInput, checkRanges bool) []string {
	return horizontalPlateRegistry.Methods(in, checkRanges)
}

// HorizontalPlate evaluates Nu for free convection from a horizontal
// plate with the named method, or the default VDI when method is empty.
func HorizontalPlate(in HorizontalPlateInput, method string) (float64, error) {
	return horizontalPlateRegistry.Evaluate(in, method)
}
