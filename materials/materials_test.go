package materials

import (
	"errors"
	"testing"

	"github.com/onsi/gomega"
)

func TestNames(t *testing.T) {
	g := gomega.NewWithT(t)

	names := Names()
	g.Expect(len(names)).To(gomega.Equal(390))
	g.Expect(names).To(gomega.ContainElement("Fused silica"))
	g.Expect(names).To(gomega.ContainElement("Mineral fiber"))
	g.Expect(names).To(gomega.ContainElement("Metals, stainless steel"))

	// Refractories sort first, alphabetically.
	g.Expect(Source(names[0])).To(gomega.Equal(TableRefractory))
}

func TestSource(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(Source("Fused silica")).To(gomega.Equal(TableRefractory))
	g.Expect(Source("Mineral fiber")).To(gomega.Equal(TableASHRAE))
	g.Expect(Source("Metals, stainless steel")).To(gomega.Equal(TableBuilding))
	g.Expect(Source("not a material")).To(gomega.Equal(Table(0)))
}

func TestExactLookups(t *testing.T) {
	g := gomega.NewWithT(t)

	k, err := K("Mineral fiber", 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(k).To(gomega.Equal(0.036))

	cp, err := Cp("Mineral fiber", 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(cp).To(gomega.Equal(840.0))

	rho, err := Rho("Mineral fiber")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(rho).To(gomega.Equal(30.0))

	rho, err = Rho("Board, Asbestos/cement")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(rho).To(gomega.Equal(1900.0))

	k, err = K("Metals, stainless steel", 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(k).To(gomega.Equal(17.0))
}

func TestRefractoryInterpolation(t *testing.T) {
	g := gomega.NewWithT(t)

	// Grid endpoints.
	g.Expect(RefractoryK("Fused silica", 673.15)).To(gomega.BeNumerically("~", 1.44, 1e-12))
	g.Expect(RefractoryK("Fused silica", 1473.15)).To(gomega.BeNumerically("~", 1.73, 1e-12))

	// Midpoints interpolate linearly.
	g.Expect(RefractoryK("Fused silica", 1000)).To(gomega.BeNumerically("~", 1.58074, 1e-9))
	g.Expect(RefractoryCp("Fused silica", 1000)).To(gomega.BeNumerically("~", 956.78225, 1e-9))

	// Outside the grid the endpoint holds instead of extrapolating.
	g.Expect(RefractoryK("Fused silica", 200)).To(gomega.BeNumerically("~", 1.44, 1e-12))
	g.Expect(RefractoryK("Fused silica", 5000)).To(gomega.BeNumerically("~", 1.73, 1e-12))
	g.Expect(RefractoryCp("Fused silica", 200)).To(gomega.BeNumerically("~", 917.0, 1e-12))
	g.Expect(RefractoryCp("Fused silica", 5000)).To(gomega.BeNumerically("~", 982.0, 1e-12))
}

func TestASHRAEConductivityFromResistance(t *testing.T) {
	g := gomega.NewWithT(t)

	// OSB stores R = 0.12 over 12.7 mm, no direct conductivity.
	k, err := K("Oriented strand board (OSB)", 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(k).To(gomega.BeNumerically("~", 0.0127/0.12, 1e-12))
}

func TestUnavailableProperties(t *testing.T) {
	g := gomega.NewWithT(t)

	// This carpet entry stores density and resistance but no heat
	// capacity.
	_, err := Cp("Carpet and rebounded urethane pad", 0)
	g.Expect(err).To(gomega.MatchError(ErrPropertyUnavailable))

	var upe *UnavailablePropertyError
	g.Expect(errors.As(err, &upe)).To(gomega.BeTrue())
	g.Expect(upe.Property).To(gomega.Equal("heat capacity"))
}

func TestNearest(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(Nearest("stainless steel", false)).To(gomega.Equal("Metals, stainless steel"))
	g.Expect(Nearest("Mineral fiber", false)).To(gomega.Equal("Mineral fiber"))
	g.Expect(Nearest("mineral fiber", false)).To(gomega.Equal("Mineral fiber"))

	// Even junk resolves to something via the tiered cutoffs.
	g.Expect(Nearest("zzzzzz", false)).NotTo(gomega.BeEmpty())
}

func TestNearestCompleteOnly(t *testing.T) {
	g := gomega.NewWithT(t)

	id := Nearest("carpet", true)
	g.Expect(id).NotTo(gomega.BeEmpty())
	g.Expect(complete(id)).To(gomega.BeTrue())

	_, err := Rho(id)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	_, err = Cp(id, 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// A name that is already complete resolves to itself.
	g.Expect(Nearest("Mineral fiber", true)).To(gomega.Equal("Mineral fiber"))
}

func TestResolveRoundTrip(t *testing.T) {
	g := gomega.NewWithT(t)

	// A fuzzy query and its canonical resolution give the same values.
	id, table := Resolve("stainless steel")
	g.Expect(id).To(gomega.Equal("Metals, stainless steel"))
	g.Expect(table).To(gomega.Equal(TableBuilding))

	kFuzzy, err := K("stainless steel", 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	kExact, err := K(id, 0)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(kFuzzy).To(gomega.Equal(kExact))
}
