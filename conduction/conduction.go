// Package conduction provides closed-form conduction resistances and
// conversions between thermal conductivity and thermal resistance, plus
// conduction shape factors for common buried-body geometries.
package conduction

import "math"

// RToK converts a thermal resistance R over thickness t and area A to a
// thermal conductivity.
func RToK(R, t, A float64) float64 {
	return t / (A * R)
}

// KToR converts a thermal conductivity to the resistance of a slab of
// thickness t and area A.
func KToR(k, t, A float64) float64 {
	return t / (k * A)
}

// RCylinder returns the conduction resistance of a cylindrical shell of
// inner diameter Di, outer diameter Do, conductivity k and length L.
func RCylinder(Di, Do, k, L float64) float64 {
	return math.Log(Do/Di) / (k * 2 * math.Pi * L)
}

// CylinderLayer describes one material shell around a pipe.
type CylinderLayer struct {
	Thickness float64 // m
	K         float64 // W/m/K
}

// CylinderResult holds the solved heat flow through an insulated pipe.
type CylinderResult struct {
	Q      float64   // heat flow per metre of pipe, W
	Flux   float64   // heat flux on the external surface, W/m^2
	UA     float64   // overall conductance, W/K
	UOuter float64   // overall coefficient, external-area basis
	UInner float64   // overall coefficient, internal-area basis
	Ts     []float64 // temperatures from the inner fluid through each interface
	Rs     []float64 // per-layer resistances on the external-area basis
}

// Cylinder solves steady heat transfer through a pipe wall built from
// concentric material layers, with convection on both sides, on a one
// metre length basis. Fouling enters as just another layer.
func Cylinder(Ti, To, hi, ho, Di float64, layers []CylinderLayer) CylinderResult {
	const length = 1.0

	totalThickness := 0.0
	for _, l := range layers {
		totalThickness += l.Thickness
	}
	Do := Di + 2.0*totalThickness
	aExternal := math.Pi * Do * length
	aInternal := math.Pi * Di * length

	rs := make([]float64, 0, len(layers))
	rLayers := 0.0
	doRunning := Di
	for _, l := range layers {
		diRunning := doRunning
		doRunning += 2.0 * l.Thickness
		Ri := 0.5 * Do * math.Log(doRunning/diRunning) / l.K
		rLayers += Ri
		rs = append(rs, Ri)
	}

	invTerm := (Do/Di)/hi + rLayers + 1.0/ho
	uExternal := 1.0 / invTerm
	UA := aExternal * uExternal
	Q := UA * (Ti - To)
	q := Q / aExternal

	ts := make([]float64, 0, len(rs)+1)
	ts = append(ts, Ti)
	for _, Ri := range rs {
		ts = append(ts, ts[len(ts)-1]-q*Ri)
	}

	return CylinderResult{
		Q:      Q,
		Flux:   q,
		UA:     UA,
		UOuter: uExternal,
		UInner: UA / aInternal,
		Ts:     ts,
		Rs:     rs,
	}
}
