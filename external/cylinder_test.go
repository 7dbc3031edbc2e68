package external

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

func TestCylinderCorrelations(t *testing.T) {
	Re, Pr := 6071.0, 0.7
	approx(t, "Sanitjai-Goldstein", NuCylinderSanitjaiGoldstein(Re, Pr), 40.38327083519522)
	approx(t, "Churchill-Bernstein", NuCylinderChurchillBernstein(Re, Pr), 40.63708594124974)
	approx(t, "Fand", NuCylinderFand(Re, Pr), 45.19984325481126)
	approx(t, "McAdams", NuCylinderMcAdams(Re, Pr), 46.98179235867934)
	approx(t, "Whitaker", NuCylinderWhitaker(Re, Pr, nil, nil), 45.94527461589126)
	approx(t, "Perkins-Leppert 1962", NuCylinderPerkinsLeppert1962(Re, Pr, nil, nil), 49.97164291175499)
	approx(t, "Perkins-Leppert 1964", NuCylinderPerkinsLeppert1964(Re, Pr, nil, nil), 53.61767038619986)
}

func TestCylinderWallViscosityCorrection(t *testing.T) {
	mu, muw := corr.Float(1e-3), corr.Float(2e-3)
	approx(t, "Whitaker corrected",
		NuCylinderWhitaker(6071, 0.7, mu, muw), 38.63521672235044)

	// One viscosity alone must not switch the correction on.
	approx(t, "Whitaker mu only",
		NuCylinderWhitaker(6071, 0.7, mu, nil), 45.94527461589126)
}

func TestZukauskasBands(t *testing.T) {
	prw := corr.Float(0.69)
	approx(t, "Re=40", NuCylinderZukauskas(40, 0.707, prw), 2.9027726586747424)
	approx(t, "Re=500", NuCylinderZukauskas(500, 0.707, prw), 10.092132462438173)
	approx(t, "Re=7992", NuCylinderZukauskas(7992, 0.707, prw), 50.523612661934386)
	approx(t, "Re=3e5", NuCylinderZukauskas(3e5, 0.707, prw), 458.9086401059372)
	approx(t, "Pr>10", NuCylinderZukauskas(7992, 12, corr.Float(10)), 146.17301105282283)
}

func TestCylinderDispatch(t *testing.T) {
	in := CylinderInput{Re: 6071, Pr: 0.7}

	nu, err := Cylinder(in, "")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	explicit, err := Cylinder(in, "Sanitjai-Goldstein")
	if err != nil {
		t.Fatalf("explicit: %v", err)
	}
	if nu != explicit {
		t.Errorf("default must equal the explicit default: %v vs %v", nu, explicit)
	}

	_, err = Cylinder(in, "Gnielinski")
	if !errors.Is(err, corr.ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestCylinderMethods(t *testing.T) {
	bare := CylinderMethods(CylinderInput{Re: 6071, Pr: 0.7}, true)
	want := []string{"Sanitjai-Goldstein", "Churchill-Bernstein", "McAdams", "Fand"}
	if len(bare) != len(want) {
		t.Fatalf("bare inputs: got %v", bare)
	}
	for i := range want {
		if bare[i] != want[i] {
			t.Fatalf("bare inputs: got %v, want %v", bare, want)
		}
	}

	full := CylinderMethods(CylinderInput{
		Re: 6071, Pr: 0.7,
		Prw: corr.Float(0.69), Mu: corr.Float(1e-3), MuW: corr.Float(2e-3),
	}, true)
	want = []string{"Sanitjai-Goldstein", "Churchill-Bernstein", "Zukauskas",
		"Whitaker", "Perkins-Leppert 1964", "McAdams", "Fand", "Perkins-Leppert 1962"}
	if len(full) != len(want) {
		t.Fatalf("full inputs: got %v", full)
	}
	for i := range want {
		if full[i] != want[i] {
			t.Fatalf("full inputs: got %v, want %v", full, want)
		}
	}

	// Without checkRanges the catalogue is always complete.
	all := CylinderMethods(CylinderInput{Re: 6071, Pr: 0.7}, false)
	if len(all) != 8 {
		t.Errorf("catalogue: got %v", all)
	}
}

func TestCylinderExtrapolation(t *testing.T) {
	// Far outside published ranges the correlations still return finite
	// values rather than failing.
	for _, m := range CylinderMethods(CylinderInput{Re: 1e12, Pr: 0.7}, false) {
		if m == "Zukauskas" || m == "Whitaker" ||
			m == "Perkins-Leppert 1962" || m == "Perkins-Leppert 1964" {
			continue
		}
		nu, err := Cylinder(CylinderInput{Re: 1e12, Pr: 0.7}, m)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if math.IsNaN(nu) || math.IsInf(nu, 0) || nu <= 0 {
			t.Errorf("%s at Re=1e12: got %v", m, nu)
		}
	}
	approx(t, "Churchill-Bernstein Re=1e12",
		NuCylinderChurchillBernstein(1e12, 0.7), 909449697.6219655)
}
