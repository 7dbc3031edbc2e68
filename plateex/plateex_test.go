package plateex

import (
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

func TestKumar(t *testing.T) {
	approx(t, "chevron 30", NuPlateKumar(2000, 0.7, 30, nil, nil), 47.757818892853955)
	approx(t, "chevron 45 creeping", NuPlateKumar(50, 10, 45, nil, nil), 8.872460078465908)
	approx(t, "wall viscosity correction",
		NuPlateKumar(2000, 0.7, 30, corr.Float(1e-3), corr.Float(8e-4)), 49.604284135097544)
}

func TestKumarAngleRows(t *testing.T) {
	// Angles above the tabulated 65 degrees use the last row.
	approx(t, "chevron 70", NuPlateKumar(2000, 0.7, 70, nil, nil), 18.135984782427055)
	got65 := NuPlateKumar(2000, 0.7, 65, nil, nil)
	got70 := NuPlateKumar(2000, 0.7, 70, nil, nil)
	if got65 != got70 {
		t.Errorf("chevron 70 should clamp to the 65 degree row: %v vs %v", got70, got65)
	}
}

func TestKumarReExtrapolation(t *testing.T) {
	// Above the last tabulated Re bound the last coefficient pair holds.
	approx(t, "Re=1e6", NuPlateKumar(1e6, 0.7, 30, nil, nil), 2940.7736419085877)
}

func TestSinglePhaseDispatch(t *testing.T) {
	in := SinglePhaseInput{Re: 2000, Pr: 0.7, ChevronAngle: 30}
	nu, err := SinglePhase(in, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default", nu, 47.757818892853955)

	methods := SinglePhaseMethods(in, true)
	if len(methods) != 1 || methods[0] != "Kumar" {
		t.Errorf("methods: got %v", methods)
	}
}

func TestAmalfi(t *testing.T) {
	in := BoilingInput{
		M: 3e-5, X: 0.4, Dh: 0.00172,
		RhoL: 567, RhoG: 18.09,
		MuL: 156e-6, MuG: 7.11e-6,
		KL: 0.086, Hvap: 9e5, Sigma: 0.02,
		Q: 1e5, AChannelFlow: 0.0003,
	}
	approx(t, "microscale (Bd < 4)", HBoilingAmalfi(in), 776.0781179096225)

	in.ChevronAngle = 60
	approx(t, "chevron 60", HBoilingAmalfi(in), 1065.278071747635)

	in.ChevronAngle = 0
	in.Dh = 0.0172
	approx(t, "macroscale (Bd >= 4)", HBoilingAmalfi(in), 527.4075513650002)
}

func TestBoilingDispatch(t *testing.T) {
	in := BoilingInput{
		M: 3e-5, X: 0.4, Dh: 0.00172,
		RhoL: 567, RhoG: 18.09,
		MuL: 156e-6, MuG: 7.11e-6,
		KL: 0.086, Hvap: 9e5, Sigma: 0.02,
		Q: 1e5, AChannelFlow: 0.0003,
	}
	h, err := Boiling(in, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default is Amalfi", h, 776.0781179096225)
}
