// Package supercrit provides heat transfer correlations for turbulent
// internal flow of supercritical fluids, mostly water and CO2. Property
// variation across the boundary layer dominates this regime, so most
// methods accept optional wall/bulk property pairs that switch on
// correction factors; two (Shitsman, Ornatsky) cannot run at all
// without the wall Prandtl number.
package supercrit

import (
	"math"

	"github.com/procalc/heatcorr/corr"
)

// Input carries the inputs for supercritical internal flow. Re and Pr
// are with respect to bulk conditions. Every pointer field is optional;
// the correlations that accept it apply the matching correction only
// when it is set.
type Input struct {
	Re float64
	Pr float64

	Prw  *float64 // wall Prandtl number; mandatory for Shitsman and Ornatsky
	PrPc *float64 // pseudocritical Prandtl number (Yamagata)

	RhoW *float64 // wall density, kg/m^3
	RhoB *float64 // bulk density, kg/m^3
	MuW  *float64 // wall viscosity, Pa*s
	MuB  *float64 // bulk viscosity, Pa*s
	KW   *float64 // wall conductivity, W/m/K
	KB   *float64 // bulk conductivity, W/m/K

	CpAvg *float64 // integrated average heat capacity, J/kg/K
	CpB   *float64 // bulk heat capacity, J/kg/K

	TB  *float64 // bulk temperature, K
	TW  *float64 // wall temperature, K
	TPc *float64 // pseudocritical temperature, K

	H *float64 // bulk enthalpy, J/kg (Griem, Kitoh)
	G *float64 // mass flux, kg/m^2/s (Kitoh)
	Q *float64 // heat flux, W/m^2 (Kitoh)

	D *float64 // tube diameter, m (Bishop entrance effect)
	X *float64 // axial position, m (Bishop entrance effect)
}

func both(a, b *float64) bool { return a != nil && b != nil }

// NuMcAdams returns Nu per McAdams (1942), the Dittus-Boelter form
// refit for supercritical water.
func NuMcAdams(Re, Pr float64) float64 {
	return 0.0243 * math.Pow(Re, 0.8) * math.Pow(Pr, 0.4)
}

// NuShitsman returns Nu per Shitsman (1963), evaluated with the lesser
// of the bulk and wall Prandtl numbers.
func NuShitsman(Re, PrB, PrW float64) float64 {
	return 0.023 * math.Pow(Re, 0.8) * math.Pow(math.Min(PrB, PrW), 0.8)
}

// NuGriem returns Nu per Griem (1996). The enthalpy-banded factor w
// defaults to 1 when the bulk enthalpy is not given.
func NuGriem(Re, Pr float64, H *float64) float64 {
	w := 1.0
	if H != nil {
		switch {
		case *H < 1.54e6:
			w = 0.82
		case *H > 1.74e6:
			w = 1.0
		default:
			w = 0.82 + 9e-7*(*H-1.54e6)
		}
	}
	return 0.0169 * math.Pow(Re, 0.8356) * math.Pow(Pr, 0.432) * w
}

// NuJackson returns Nu per Jackson (2002). The heat-capacity exponent n
// depends on where the bulk and wall temperatures sit relative to the
// pseudocritical point.
func NuJackson(Re, Pr float64, rhoW, rhoB, cpAvg, cpB, tB, tW, tPc *float64) float64 {
	n := 0.4
	if tB != nil && tW != nil && tPc != nil {
		b, w, pc := *tB, *tW, *tPc
		switch {
		case (b < w && w < pc) || (1.2*pc < b && b < w):
			n = 0.4
		case b < pc && pc < w:
			n = 0.4 + 0.2*(w/pc-1)
		default:
			n = 0.4 + 0.2*(w/pc-1)*(1-5*(b/pc-1))
		}
	}
	Nu := 0.0183 * math.Pow(Re, 0.82) * math.Pow(Pr, 0.5)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.3)
	}
	if both(cpAvg, cpB) {
		Nu *= math.Pow(*cpAvg / *cpB, n)
	}
	return Nu
}

// NuGupta returns Nu per Gupta (2013), developed for supercritical CO2.
func NuGupta(Re, Pr float64, rhoW, rhoB, muW, muB *float64) float64 {
	Nu := 0.004 * math.Pow(Re, 0.923) * math.Pow(Pr, 0.773)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.186)
	}
	if both(muW, muB) {
		Nu *= math.Pow(*muW / *muB, 0.366)
	}
	return Nu
}

// NuSwenson returns Nu per Swenson (1965).
func NuSwenson(Re, Pr float64, rhoW, rhoB *float64) float64 {
	Nu := 0.00459 * math.Pow(Re, 0.923) * math.Pow(Pr, 0.613)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.231)
	}
	return Nu
}

// NuXu returns Nu per Xu (2005).
func NuXu(Re, Pr float64, rhoW, rhoB, muW, muB *float64) float64 {
	Nu := 0.02269 * math.Pow(Re, 0.8079) * math.Pow(Pr, 0.9213)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.6638)
	}
	if both(muW, muB) {
		Nu *= math.Pow(*muW / *muB, 0.8687)
	}
	return Nu
}

// NuMokry returns Nu per Mokry (2011), refit against the most complete
// supercritical water database available at the time.
func NuMokry(Re, Pr float64, rhoW, rhoB *float64) float64 {
	Nu := 0.0061 * math.Pow(Re, 0.904) * math.Pow(Pr, 0.684)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.564)
	}
	return Nu
}

// NuBringerSmith returns Nu per Bringer and Smith (1957).
func NuBringerSmith(Re, Pr float64) float64 {
	return 0.0266 * math.Pow(Re, 0.77) * math.Pow(Pr, 0.55)
}

// NuOrnatsky returns Nu per Ornatsky (1970): the Shitsman form with a
// density-ratio correction.
func NuOrnatsky(Re, PrB, PrW float64, rhoW, rhoB *float64) float64 {
	Nu := 0.023 * math.Pow(Re, 0.8) * math.Pow(math.Min(PrB, PrW), 0.8)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.3)
	}
	return Nu
}

// NuGorban returns Nu per Gorban (1990). The negative Prandtl exponent
// is as published.
func NuGorban(Re, Pr float64) float64 {
	return 0.0059 * math.Pow(Re, 0.90) * math.Pow(Pr, -0.12)
}

// NuZhu returns Nu per Zhu (2009).
func NuZhu(Re, Pr float64, rhoW, rhoB, kW, kB *float64) float64 {
	Nu := 0.0068 * math.Pow(Re, 0.9) * math.Pow(Pr, 0.63)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.17)
	}
	if both(kW, kB) {
		Nu *= math.Pow(*kW / *kB, 0.29)
	}
	return Nu
}

// NuBishop returns Nu per Bishop (1965), with an optional thermal
// entrance correction when the tube diameter and axial position are
// given.
func NuBishop(Re, Pr float64, rhoW, rhoB, D, x *float64) float64 {
	Nu := 0.0069 * math.Pow(Re, 0.9) * math.Pow(Pr, 0.66)
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.43)
	}
	if both(D, x) {
		Nu *= 1 + 2.4*(*D)/(*x)
	}
	return Nu
}

// NuYamagata returns Nu per Yamagata (1972). The correction factor F
// depends on where the pseudocritical temperature falls between the
// bulk and wall temperatures.
func NuYamagata(Re, Pr float64, prPc, cpAvg, cpB, tB, tW, tPc *float64) float64 {
	F := 1.0
	if tB != nil && tW != nil && tPc != nil && prPc != nil && cpAvg != nil && cpB != nil {
		E := (*tPc - *tB) / (*tW - *tB)
		if E < 0.0 {
			n2 := 1.44*(1.0+1.0/(*prPc)) - 0.53
			F = math.Pow(*cpAvg / *cpB, n2)
		} else if E < 1.0 {
			n1 := -0.77*(1.0+1.0/(*prPc)) + 1.49
			F = 0.67 * math.Pow(*prPc, -0.05) * math.Pow(*cpAvg / *cpB, n1)
		}
	}
	return 0.0138 * math.Pow(Re, 0.85) * math.Pow(Pr, 0.8) * F
}

// NuKitoh returns Nu per Kitoh (1999). The Prandtl exponent m depends
// on the bulk enthalpy, mass flux and heat flux when all three are
// given.
func NuKitoh(Re, Pr float64, H, G, q *float64) float64 {
	m := 0.69
	if H != nil && G != nil && q != nil {
		qht := 200.0 * math.Pow(*G, 1.2)
		var fc float64
		switch {
		case *H < 1.5e6:
			fc = 2.9e-8 + 0.11/qht
		case *H <= 3.3e6:
			fc = -8.7e-8 - 0.65/qht
		default:
			fc = -9.7e-7 + 1.3/qht
		}
		m = 0.69 - 81000.0/qht + fc*(*q)
	}
	return 0.015 * math.Pow(Re, 0.85) * math.Pow(Pr, m)
}

// petukhovFriction is the Filonenko smooth-tube friction factor used by
// the Petukhov-form correlations.
func petukhovFriction(Re float64) float64 {
	t := 1.82*math.Log10(Re) - 1.64
	return 1.0 / (t * t)
}

// NuKrasnoshchekovProtopopov returns Nu per Krasnoshchekov and
// Protopopov (1959): the Petukhov core with viscosity, conductivity and
// heat-capacity ratio corrections.
func NuKrasnoshchekovProtopopov(Re, Pr float64, cpAvg, cpB, kW, kB, muW, muB *float64) float64 {
	fd := petukhovFriction(Re)
	Nu := (fd / 8.0) * Re * Pr /
		(1.07 + 12.7*math.Sqrt(fd/8.0)*(math.Pow(Pr, 2.0/3.0)-1))
	if both(muW, muB) {
		Nu *= math.Pow(*muW / *muB, 0.11)
	}
	if both(kW, kB) {
		Nu *= math.Pow(*kW / *kB, -0.33)
	}
	if both(cpAvg, cpB) {
		Nu *= math.Pow(*cpAvg / *cpB, 0.35)
	}
	return Nu
}

// NuPetukhov returns Nu per Petukhov (1983), with the property
// corrections folded into the friction factor.
func NuPetukhov(Re, Pr float64, rhoW, rhoB, muW, muB *float64) float64 {
	fd := petukhovFriction(Re)
	if both(rhoW, rhoB) {
		fd *= math.Pow(*rhoW / *rhoB, 0.4)
	}
	if both(muW, muB) {
		fd *= math.Pow(*muW / *muB, 0.2)
	}
	return (fd / 8.0) * Re * Pr /
		(1 + 900.0/Re + 12.7*math.Sqrt(fd/8.0)*(math.Pow(Pr, 2.0/3.0)-1))
}

// NuKrasnoshchekov returns Nu per Krasnoshchekov (1967). The
// heat-capacity exponent n depends on the wall and bulk temperatures
// relative to the pseudocritical point.
func NuKrasnoshchekov(Re, Pr float64, rhoW, rhoB, cpAvg, cpB, tB, tW, tPc *float64) float64 {
	n := 0.4
	if tB != nil && tW != nil && tPc != nil {
		b, w, pc := *tB, *tW, *tPc
		n1 := 0.22 + 0.18*w/pc
		switch {
		case (b < w && w < pc) || (1.2*pc < b && b < w):
			n = 0.4
		case 1.0 < w/pc && w/pc < 2.5:
			n = n1
		default:
			n = n1 + (5.0*n1-2.0)*(1.0-b/pc)
		}
	}
	fd := petukhovFriction(Re)
	Nu := (fd / 8.0) * Re * Pr /
		(1.07 + 12.7*math.Sqrt(fd/8.0)*(math.Pow(Pr, 2.0/3.0)-1.0))
	if both(rhoW, rhoB) {
		Nu *= math.Pow(*rhoW / *rhoB, 0.3)
	}
	if both(cpAvg, cpB) {
		Nu *= math.Pow(*cpAvg / *cpB, n)
	}
	return Nu
}

func missingPrw(in Input) []string {
	if in.Prw == nil {
		return []string{"Prw"}
	}
	return nil
}

var registry = corr.New("supercritical internal flow", "Mokry",
	[]corr.Method[Input]{
		{Name: "Mokry", Fn: func(in Input) float64 {
			return NuMokry(in.Re, in.Pr, in.RhoW, in.RhoB)
		}},
		{Name: "Jackson", Fn: func(in Input) float64 {
			return NuJackson(in.Re, in.Pr, in.RhoW, in.RhoB, in.CpAvg, in.CpB, in.TB, in.TW, in.TPc)
		}},
		{Name: "Gupta", Fn: func(in Input) float64 {
			return NuGupta(in.Re, in.Pr, in.RhoW, in.RhoB, in.MuW, in.MuB)
		}},
		{Name: "Zhu", Fn: func(in Input) float64 {
			return NuZhu(in.Re, in.Pr, in.RhoW, in.RhoB, in.KW, in.KB)
		}},
		{Name: "Xu", Fn: func(in Input) float64 {
			return NuXu(in.Re, in.Pr, in.RhoW, in.RhoB, in.MuW, in.MuB)
		}},
		{Name: "Swenson", Fn: func(in Input) float64 {
			return NuSwenson(in.Re, in.Pr, in.RhoW, in.RhoB)
		}},
		{Name: "Bishop", Fn: func(in Input) float64 {
			return NuBishop(in.Re, in.Pr, in.RhoW, in.RhoB, in.D, in.X)
		}},
		{Name: "Yamagata", Fn: func(in Input) float64 {
			return NuYamagata(in.Re, in.Pr, in.PrPc, in.CpAvg, in.CpB, in.TB, in.TW, in.TPc)
		}},
		{Name: "Kitoh", Fn: func(in Input) float64 {
			return NuKitoh(in.Re, in.Pr, in.H, in.G, in.Q)
		}},
		{Name: "Griem", Fn: func(in Input) float64 {
			return NuGriem(in.Re, in.Pr, in.H)
		}},
		{Name: "Ornatsky", Fn: func(in Input) float64 {
			return NuOrnatsky(in.Re, in.Pr, *in.Prw, in.RhoW, in.RhoB)
		}, Missing: missingPrw},
		{Name: "Shitsman", Fn: func(in Input) float64 {
			return NuShitsman(in.Re, in.Pr, *in.Prw)
		}, Missing: missingPrw},
		{Name: "Krasnoshchekov-Protopopov", Fn: func(in Input) float64 {
			return NuKrasnoshchekovProtopopov(in.Re, in.Pr, in.CpAvg, in.CpB, in.KW, in.KB, in.MuW, in.MuB)
		}},
		{Name: "Krasnoshchekov", Fn: func(in Input) float64 {
			return NuKrasnoshchekov(in.Re, in.Pr, in.RhoW, in.RhoB, in.CpAvg, in.CpB, in.TB, in.TW, in.TPc)
		}},
		{Name: "Petukhov", Fn: func(in Input) float64 {
			return NuPetukhov(in.Re, in.Pr, in.RhoW, in.RhoB, in.MuW, in.MuB)
		}},
		{Name: "Gorban", Fn: func(in Input) float64 {
			return NuGorban(in.Re, in.Pr)
		}},
		{Name: "Bringer-Smith", Fn: func(in Input) float64 {
			return NuBringerSmith(in.Re, in.Pr)
		}},
		{Name: "McAdams", Fn: func(in Input) float64 {
			return NuMcAdams(in.Re, in.Pr)
		}},
	})

// Methods returns the applicable method names for supercritical
// internal flow, most recommended first. Methods whose mandatory wall
// Prandtl number is absent are dropped when checkRanges is set.
func Methods(in Input, checkRanges bool) []string {
	return registry.Methods(in, checkRanges)
}

// Nu evaluates the Nusselt number for supercritical internal flow with
// the named method, or the default Mokry when method is empty.
func Nu(in Input, method string) (float64, error) {
	return registry.Evaluate(in, method)
}
