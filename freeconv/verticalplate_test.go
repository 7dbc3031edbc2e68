package freeconv

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Abs(want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestVerticalPlateChurchill(t *testing.T) {
	approx(t, "Churchill", NuVerticalPlateChurchill(0.69, 2.63e9), 147.16185223770603)
}

func TestVerticalPlateDispatch(t *testing.T) {
	in := VerticalPlateInput{Pr: 0.69, Gr: 2.63e9}
	nu, err := VerticalPlate(in, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default", nu, 147.16185223770603)

	methods := VerticalPlateMethods(in, true)
	if len(methods) != 1 || methods[0] != "Churchill" {
		t.Errorf("methods: got %v", methods)
	}
}
