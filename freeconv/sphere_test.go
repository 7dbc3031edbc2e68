package freeconv

import "testing"

func TestSphereChurchill(t *testing.T) {
	approx(t, "Churchill", NuSphereChurchill(0.7, 1e7), 25.670869440317578)
}

func TestSphereVanishingRayleigh(t *testing.T) {
	// At vanishing Ra the correlation reduces to the conduction limit.
	approx(t, "conduction limit", NuSphereChurchill(0.7, 0), 2.0)
}

func TestSphereDispatch(t *testing.T) {
	nu, err := Sphere(SphereInput{Pr: 0.7, Gr: 1e7}, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default", nu, 25.670869440317578)
}
