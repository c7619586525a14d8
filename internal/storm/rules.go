package storm

import (
	"fmt"
	"math"
)

// UniformGrid returns n elapsed-time values evenly spaced over [start, end],
// endpoints included.
func UniformGrid(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
		return grid
	}
	step := (end - start) / float64(n-1)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	// Land exactly on the endpoint regardless of accumulated rounding.
	grid[n-1] = end
	return grid
}

// ConstantVelocityEye returns an EyeRule that moves the eye from a start
// position at a constant velocity, given in degrees per second.
func ConstantVelocityEye(startLon, startLat, lonVel, latVel float64) EyeRule {
	return func(elapsed float64) (float64, float64) {
		return startLon + lonVel*elapsed, startLat + latVel*elapsed
	}
}

// GaussianIntensity returns an IntensityRule with a Gaussian envelope:
// peak m/s at center seconds, decaying with the given width (seconds).
func GaussianIntensity(peak, center, width float64) IntensityRule {
	return func(elapsed float64) float64 {
		d := (elapsed - center) / width
		return peak * math.Exp(-d*d)
	}
}

// SampledIntensity returns an IntensityRule backed by a table of
// (time, speed) knots. Queries between knots interpolate linearly; queries
// outside the table clamp to the nearest endpoint. Knot times must be
// strictly increasing and speeds non-negative.
func SampledIntensity(times, speeds []float64) (IntensityRule, error) {
	if len(times) == 0 || len(times) != len(speeds) {
		return nil, fmt.Errorf("intensity table: %d times vs %d speeds", len(times), len(speeds))
	}
	for i := range times {
		if i > 0 && times[i] <= times[i-1] {
			return nil, fmt.Errorf("intensity table: %w", ErrTimeGridNotIncreasing)
		}
		if speeds[i] < 0 {
			return nil, fmt.Errorf("intensity table: %w: %g m/s", ErrNegativeIntensity, speeds[i])
		}
	}

	ts := append([]float64(nil), times...)
	vs := append([]float64(nil), speeds...)

	return func(elapsed float64) float64 {
		if elapsed <= ts[0] {
			return vs[0]
		}
		if elapsed >= ts[len(ts)-1] {
			return vs[len(vs)-1]
		}
		for i := 1; i < len(ts); i++ {
			if elapsed <= ts[i] {
				frac := (elapsed - ts[i-1]) / (ts[i] - ts[i-1])
				return vs[i-1] + frac*(vs[i]-vs[i-1])
			}
		}
		return vs[len(vs)-1]
	}, nil
}

// ConstantRadius returns a RadiusRule with a fixed outer radius in meters.
func ConstantRadius(meters float64) RadiusRule {
	return func(float64) float64 { return meters }
}
