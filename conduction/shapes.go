package conduction

import "math"

// Conduction shape factors S such that Q = S*k*dT for isothermal bodies
// exchanging heat with large plane or cylindrical surfaces.

// ShapeSphereToPlane returns S for an isothermal sphere of diameter D
// buried a distance Z below a plane surface.
func ShapeSphereToPlane(D, Z float64) float64 {
	return 2 * math.Pi * D / (1.0 - D/(4.0*Z))
}

// ShapePipeToPlane returns S for a pipe of diameter D buried a distance
// Z below a plane, per unit length L.
func ShapePipeToPlane(D, Z, L float64) float64 {
	return 2.0 * math.Pi * L / math.Acosh(2.0*Z/D)
}

// ShapePipeNormalToPlane returns S for a pipe of diameter D and length
// L normal to a plane surface.
func ShapePipeNormalToPlane(D, L float64) float64 {
	return 2.0 * math.Pi * L / math.Log(4.0*L/D)
}

// ShapePipeToPipe returns S between two parallel buried pipes of
// diameters D1 and D2 separated by center distance W, per length L.
func ShapePipeToPipe(D1, D2, W, L float64) float64 {
	return 2.0 * math.Pi * L / math.Acosh((4.0*W*W-D1*D1-D2*D2)/(2.0*D1*D2))
}

// ShapePipeToTwoPlanes returns S for a pipe of diameter D centered
// between two parallel planes 2Z apart, per length L.
func ShapePipeToTwoPlanes(D, Z, L float64) float64 {
	return 2.0 * math.Pi * L / math.Log(8.0*Z/(math.Pi*D))
}

// ShapePipeEccentricToPipe returns S for a pipe of diameter D1 inside a
// pipe of diameter D2 with eccentricity Z, per length L.
func ShapePipeEccentricToPipe(D1, D2, Z, L float64) float64 {
	return 2.0 * math.Pi * L / math.Acosh((D2*D2+D1*D1-4.0*Z*Z)/(2.0*D1*D2))
}
