package corr

import "math"

// Standard gravity, m/s^2.
const G = 9.80665

// Reynolds returns the Reynolds number for velocity V, characteristic
// length D, density rho and dynamic viscosity mu.
func Reynolds(V, D, rho, mu float64) float64 {
	return rho * V * D / mu
}

// Prandtl returns the Prandtl number from heat capacity, viscosity and
// thermal conductivity.
func Prandtl(Cp, mu, k float64) float64 {
	return Cp * mu / k
}

// Grashof returns the Grashof number for characteristic length L,
// isobaric expansion coefficient beta, surface and fluid temperatures,
// and kinematic viscosity nu.
func Grashof(L, beta, T1, T2, nu float64) float64 {
	return G * beta * math.Abs(T2-T1) * L * L * L / (nu * nu)
}

// Rayleigh returns the Rayleigh number, the free-convection regime
// discriminator.
func Rayleigh(Gr, Pr float64) float64 {
	return Gr * Pr
}

// Bond returns the Bond number for the liquid/gas pair over
// characteristic length L.
func Bond(rhol, rhog, sigma, L float64) float64 {
	return (rhol - rhog) * G * L * L / sigma
}

// Boiling returns the Boiling number for heat flux q, mass flux G and
// heat of vaporization Hvap.
func Boiling(G, q, Hvap float64) float64 {
	return q / (G * Hvap)
}

// NuToH converts a Nusselt number to a heat transfer coefficient for
// fluid conductivity k and characteristic length L.
func NuToH(Nu, k, L float64) float64 {
	return Nu * k / L
}

// HToNu converts a heat transfer coefficient to a Nusselt number.
func HToNu(h, k, L float64) float64 {
	return h * L / k
}

// Float returns a pointer to v, for filling optional input fields.
func Float(v float64) *float64 {
	return &v
}
