package freeconv

import "testing"

func TestHorizontalCylinderCorrelations(t *testing.T) {
	Pr, Gr := 0.69, 2.63e9

	approx(t, "Churchill-Chu", NuHorizontalCylinderChurchillChu(Pr, Gr), 139.13493970073597)
	approx(t, "Kuehn & Goldstein", NuHorizontalCylinderKuehnGoldstein(Pr, Gr), 122.99323525628186)
	approx(t, "Morgan", NuHorizontalCylinderMorgan(Pr, Gr), 151.3881997228419)
}

func TestHorizontalCylinderMorganBands(t *testing.T) {
	approx(t, "lowest band", NuHorizontalCylinderMorgan(0.72, 1e7), 24.864192615468973)
}

func TestHorizontalCylinderDispatch(t *testing.T) {
	in := HorizontalCylinderInput{Pr: 0.69, Gr: 2.63e9}

	nu, err := HorizontalCylinder(in, "")
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "default is Morgan", nu, 151.3881997228419)

	methods := HorizontalCylinderMethods(in, true)
	want := []string{"Morgan", "Churchill-Chu", "Kuehn & Goldstein"}
	if len(methods) != len(want) {
		t.Fatalf("methods: got %v", methods)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("methods: got %v, want %v", methods, want)
		}
	}
}
