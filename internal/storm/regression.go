package storm

import "math"

// Radius-of-maximum-winds regression constants (km-scale fit, V in m/s,
// latitude in degrees). Coefficient set from published cyclone climatology;
// treated as a named constant set, not configuration.
const (
	rmwIntercept = 218.3784
	rmwLinear    = 1.2014
	rmwQuadDiv   = 10.9884
	rmwCubeDiv   = 35.3052
	rmwLatitude  = 145.5090
)

// Kossin (2015) central-pressure regression constants, Atlantic basin.
// p_mb = kossinA·V² + kossinB·V + kossinC with V in m/s.
const (
	kossinA = -0.0025
	kossinB = -0.36
	kossinC = 1021.36
)

const (
	degToRad   = math.Pi / 180.0
	mbToPascal = 100.0
)

// maxWindRadius returns the radius of maximum winds in meters for a given
// max sustained wind speed (m/s) and eye latitude (degrees). The fit is
// only physically meaningful for tropical-cyclone-range winds; out-of-range
// inputs are evaluated as-is.
func maxWindRadius(windSpeed, latitude float64) float64 {
	km := rmwIntercept -
		rmwLinear*windSpeed +
		math.Pow(windSpeed/rmwQuadDiv, 2) -
		math.Pow(windSpeed/rmwCubeDiv, 3) -
		rmwLatitude*math.Cos(latitude*degToRad)
	return km * 1000.0
}

// centralPressure returns the storm central pressure in Pascals for a given
// max sustained wind speed (m/s). Monotonically decreasing in wind speed
// over the fit's calibrated range (both quadratic and linear terms are
// negative for V > 0).
func centralPressure(windSpeed float64) float64 {
	mb := kossinA*windSpeed*windSpeed + kossinB*windSpeed + kossinC
	return mb * mbToPascal
}
