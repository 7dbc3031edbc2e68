package external

import (
	"testing"
)

func TestPlateCorrelations(t *testing.T) {
	approx(t, "Baehr", NuPlateLaminarBaehr(1e5, 0.7), 186.4378528752262)
	approx(t, "Churchill Ozoe", NuPlateLaminarChurchillOzoe(1e5, 0.7), 183.08600782591418)
	approx(t, "Schlichting", NuPlateTurbulentSchlichting(1e5, 0.7), 309.620048541267)
	approx(t, "Kreith", NuPlateTurbulentKreith(1.03e6, 0.71), 2074.8740070411122)
}

func TestPlateBaehrPrBands(t *testing.T) {
	approx(t, "liquid metal", NuPlateLaminarBaehr(1e5, 0.001), 11.28)
	approx(t, "low Pr", NuPlateLaminarBaehr(1e5, 0.01), 31.622776601683793)
	approx(t, "high Pr", NuPlateLaminarBaehr(1e5, 20), 581.9777204362737)
}

func TestPlateRegimeDefault(t *testing.T) {
	laminar, err := Plate(PlateInput{Re: 1e5, Pr: 0.7}, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "laminar default is Baehr", laminar, 186.4378528752262)

	turbulent, err := Plate(PlateInput{Re: 1e7, Pr: 0.7}, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "turbulent default is Schlichting", turbulent, 11496.952599969829)

	// A raised transition keeps Re=1e6 laminar.
	if got := plateRegistry.Default(PlateInput{Re: 1e6, Pr: 0.7, ReTransition: 2e6}); got != "Baehr" {
		t.Errorf("custom transition default: got %s", got)
	}
	if got := plateRegistry.Default(PlateInput{Re: 5e5, Pr: 0.7}); got != "Schlichting" {
		t.Errorf("transition is inclusive: got %s", got)
	}
}

func TestPlateMethodsRegimeBuckets(t *testing.T) {
	lam := PlateMethods(PlateInput{Re: 1e5, Pr: 0.7}, true)
	want := []string{"Baehr", "Churchill Ozoe"}
	if len(lam) != len(want) {
		t.Fatalf("laminar bucket: got %v", lam)
	}
	for i := range want {
		if lam[i] != want[i] {
			t.Fatalf("laminar bucket: got %v, want %v", lam, want)
		}
	}

	turb := PlateMethods(PlateInput{Re: 1e7, Pr: 0.7}, true)
	want = []string{"Schlichting", "Kreith"}
	if len(turb) != len(want) {
		t.Fatalf("turbulent bucket: got %v", turb)
	}
	for i := range want {
		if turb[i] != want[i] {
			t.Fatalf("turbulent bucket: got %v, want %v", turb, want)
		}
	}

	all := PlateMethods(PlateInput{Re: 1e5, Pr: 0.7}, false)
	if len(all) != 4 {
		t.Errorf("catalogue: got %v", all)
	}
	if all[0] != "Baehr" {
		t.Errorf("default must lead: %v", all)
	}
}
