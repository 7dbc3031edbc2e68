package supercrit

import (
	"errors"
	"math"
	"testing"

	"github.com/procalc/heatcorr/corr"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Abs(want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestCorrelationsBulkOnly(t *testing.T) {
	Re, Pr := 1e5, 1.2

	approx(t, "McAdams", NuMcAdams(Re, Pr), 261.3838629346147)
	approx(t, "Shitsman", NuShitsman(Re, Pr, 1.6), 266.1171311047253)
	approx(t, "Griem", NuGriem(Re, Pr, nil), 275.4818576600527)
	approx(t, "Jackson", NuJackson(Re, Pr, nil, nil, nil, nil, nil, nil, nil), 252.37231572974918)
	approx(t, "Bringer-Smith", NuBringerSmith(Re, Pr), 208.17631753279107)
	approx(t, "Gorban", NuGorban(Re, Pr), 182.5367282733999)
	approx(t, "Mokry", NuMokry(Re, Pr, nil, nil), 228.8178008454556)
	approx(t, "Kitoh", NuKitoh(Re, Pr, nil, nil, nil), 0.015*math.Pow(1e5, 0.85)*math.Pow(1.2, 0.69))
	approx(t, "Krasnoshchekov", NuKrasnoshchekov(Re, Pr, nil, nil, nil, nil, nil, nil, nil), 234.8285518561)
}

func TestCorrelationsWithWallProperties(t *testing.T) {
	Re, Pr := 1e5, 1.2
	rhoW, rhoB := corr.Float(330), corr.Float(290)
	muW, muB := corr.Float(8e-4), corr.Float(9e-4)
	kW, kB := corr.Float(0.63), corr.Float(0.69)
	cpAvg, cpB := corr.Float(2080.845), corr.Float(2048.621)
	tB, tW, tPc := corr.Float(650), corr.Float(700), corr.Float(600)

	approx(t, "Gupta", NuGupta(Re, Pr, rhoW, rhoB, muW, muB), 186.20135477175126)
	approx(t, "Swenson", NuSwenson(Re, Pr, rhoW, rhoB), 217.92827034803668)
	approx(t, "Xu", NuXu(Re, Pr, rhoW, rhoB, muW, muB), 289.133054256742)
	approx(t, "Mokry", NuMokry(Re, Pr, rhoW, rhoB), 246.11563191569923)
	approx(t, "Ornatsky", NuOrnatsky(Re, Pr, 1.5, rhoW, rhoB), 276.63531150832307)
	approx(t, "Zhu", NuZhu(Re, Pr, rhoW, rhoB, kW, kB), 240.1459854494706)
	approx(t, "Bishop", NuBishop(Re, Pr, rhoW, rhoB, corr.Float(0.01), corr.Float(1.2)), 265.3620050072533)
	approx(t, "Yamagata", NuYamagata(Re, Pr, corr.Float(1.5), cpAvg, cpB, tB, tW, tPc), 292.3473428004679)
	approx(t, "Kitoh", NuKitoh(Re, Pr, corr.Float(1.3e6), corr.Float(1500), corr.Float(5e6)), 331.80234139591306)
	approx(t, "Petukhov", NuPetukhov(Re, Pr, rhoW, rhoB, muW, muB), 254.8258598466738)
	approx(t, "Jackson", NuJackson(Re, Pr, rhoW, rhoB, cpAvg, cpB, tB, tW, tPc), 264.070286330649)
	approx(t, "Krasnoshchekov", NuKrasnoshchekov(Re, Pr, rhoW, rhoB, cpAvg, cpB, tB, tW, tPc), 245.75381603227498)
	approx(t, "Krasnoshchekov-Protopopov",
		NuKrasnoshchekovProtopopov(Re, Pr, cpAvg, cpB, corr.Float(0.62), corr.Float(0.52), muW, muB),
		219.93194102787518)
}

func TestGriemEnthalpyBands(t *testing.T) {
	approx(t, "middle band", NuGriem(1e5, 1.2, corr.Float(1.6e6)), 240.77114359488607)
}

func TestDispatch(t *testing.T) {
	in := Input{Re: 1e5, Pr: 1.2, RhoW: corr.Float(330), RhoB: corr.Float(290)}

	nu, err := Nu(in, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default is Mokry", nu, 246.11563191569923)

	explicit, err := Nu(in, "Mokry")
	if err != nil {
		t.Fatal(err)
	}
	if nu != explicit {
		t.Errorf("default must equal explicit Mokry: %v vs %v", nu, explicit)
	}

	_, err = Nu(in, "Dittus-Boelter")
	if !errors.Is(err, corr.ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestShitsmanRequiresPrw(t *testing.T) {
	in := Input{Re: 1e5, Pr: 1.2}

	for _, name := range []string{"Shitsman", "Ornatsky"} {
		_, err := Nu(in, name)
		if !errors.Is(err, corr.ErrMissingInput) {
			t.Errorf("%s without Prw: expected ErrMissingInput, got %v", name, err)
		}
	}

	in.Prw = corr.Float(1.6)
	nu, err := Nu(in, "Shitsman")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "Shitsman with Prw", nu, 266.1171311047253)
}

func TestMethodsEnumeration(t *testing.T) {
	bare := Methods(Input{Re: 1e5, Pr: 1.2}, true)
	for _, name := range bare {
		if name == "Shitsman" || name == "Ornatsky" {
			t.Errorf("%s should be dropped without Prw", name)
		}
	}
	if bare[0] != "Mokry" {
		t.Errorf("default must lead: %v", bare)
	}

	full := Methods(Input{Re: 1e5, Pr: 1.2, Prw: corr.Float(1.6)}, true)
	if len(full) != 18 {
		t.Errorf("expected the full catalogue with Prw present: got %d, %v", len(full), full)
	}
}
