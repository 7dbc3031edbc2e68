// Package materials resolves thermal properties of building,
// insulation and refractory materials by name. Names are matched
// exactly against three backing tables, or fuzzily with tiered cutoffs
// so free text always resolves to something. Refractory conductivity
// and heat capacity are temperature tables interpolated linearly and
// clamped to the tabulated grid; ASHRAE conductivity may be derived
// from a stored thermal resistance and thickness.
package materials

import (
	"errors"
	"fmt"

	"github.com/procalc/heatcorr/conduction"
)

// DefaultT is the temperature assumed when a lookup does not give one.
const DefaultT = 298.15

// ErrPropertyUnavailable indicates the source table has no value for
// the requested property of a material.
var ErrPropertyUnavailable = errors.New("materials: property unavailable")

// UnavailablePropertyError reports which property of which material the
// backing table does not carry.
type UnavailablePropertyError struct {
	Material string
	Property string
}

func (e *UnavailablePropertyError) Error() string {
	return fmt.Sprintf("materials: %s is not available for %q", e.Property, e.Material)
}

func (e *UnavailablePropertyError) Unwrap() error {
	return ErrPropertyUnavailable
}

// Resolve maps free text to a canonical material name and its owning
// table. Exact keys pass through untouched.
func Resolve(name string) (string, Table) {
	load()
	if t, ok := provenance[name]; ok {
		return name, t
	}
	id := Nearest(name, false)
	return id, provenance[id]
}

// clampRefractoryT clamps a temperature to the refractory grid. Outside
// the grid the endpoint value is used rather than extrapolating.
func clampRefractoryT(T float64) float64 {
	if T < refractoryTs[0] {
		return refractoryTs[0]
	}
	if T > refractoryTs[len(refractoryTs)-1] {
		return refractoryTs[len(refractoryTs)-1]
	}
	return T
}

// RefractoryK returns a refractory's thermal conductivity at T by
// linear interpolation over the tabulated grid.
func RefractoryK(name string, T float64) float64 {
	load()
	return refractory[name].k.Predict(clampRefractoryT(T))
}

// RefractoryCp returns a refractory's heat capacity at T by linear
// interpolation over the tabulated grid.
func RefractoryCp(name string, T float64) float64 {
	load()
	return refractory[name].cp.Predict(clampRefractoryT(T))
}

// ashraeK returns the conductivity of an ASHRAE entry, stored directly
// or derived from thermal resistance and thickness.
func ashraeK(row *ashraeRow) (float64, error) {
	if row.K != nil {
		return *row.K, nil
	}
	if row.R == nil || row.Thickness == nil {
		return 0, &UnavailablePropertyError{Material: row.Name, Property: "thermal conductivity"}
	}
	return conduction.RToK(*row.R, *row.Thickness/1000.0, 1.0), nil
}

// K returns the thermal conductivity, W/m/K, of the named material at
// temperature T (zero means DefaultT). Free text resolves to the
// nearest canonical name first.
func K(name string, T float64) (float64, error) {
	if T == 0 {
		T = DefaultT
	}
	id, table := Resolve(name)
	switch table {
	case TableRefractory:
		return RefractoryK(id, T), nil
	case TableASHRAE:
		return ashraeK(ashrae[id])
	default:
		return building[id].K, nil
	}
}

// Rho returns the density, kg/m^3, of the named material. ASHRAE
// entries without a stored density fail.
func Rho(name string) (float64, error) {
	id, table := Resolve(name)
	switch table {
	case TableRefractory:
		return refractories[id].rho, nil
	case TableBuilding:
		return building[id].Rho, nil
	default:
		row := ashrae[id]
		if row.Rho == nil {
			return 0, &UnavailablePropertyError{Material: id, Property: "density"}
		}
		return *row.Rho, nil
	}
}

// Cp returns the heat capacity, J/kg/K, of the named material at
// temperature T (zero means DefaultT). ASHRAE entries without a stored
// heat capacity fail.
func Cp(name string, T float64) (float64, error) {
	if T == 0 {
		T = DefaultT
	}
	id, table := Resolve(name)
	switch table {
	case TableRefractory:
		return RefractoryCp(id, T), nil
	case TableBuilding:
		return building[id].Cp, nil
	default:
		row := ashrae[id]
		if row.Cp == nil {
			return 0, &UnavailablePropertyError{Material: id, Property: "heat capacity"}
		}
		return *row.Cp, nil
	}
}
