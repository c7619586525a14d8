package storm

import (
	"fmt"
	"time"
)

// EyeRule maps elapsed seconds to the eye center position in degrees.
// It must be defined over the full span of the time grid.
type EyeRule func(elapsedSeconds float64) (lon, lat float64)

// IntensityRule maps elapsed seconds to max sustained wind speed in m/s.
// Negative values abort the build.
type IntensityRule func(elapsedSeconds float64) float64

// RadiusRule maps elapsed seconds to the outer storm radius in meters.
type RadiusRule func(elapsedSeconds float64) float64

// Defaults for the constant-radius regime and the background pressure field.
const (
	DefaultStormRadius     = 300.0e3 // meters
	DefaultAmbientPressure = 101.3e3 // Pascals
)

type buildOptions struct {
	stormRadius     RadiusRule
	ambientPressure float64
}

// Option adjusts track assembly.
type Option func(*buildOptions)

// WithStormRadius fixes the outer storm radius to a constant for the whole track.
func WithStormRadius(meters float64) Option {
	return func(o *buildOptions) { o.stormRadius = ConstantRadius(meters) }
}

// WithStormRadiusRule supplies a time-varying outer-radius rule.
func WithStormRadiusRule(rule RadiusRule) Option {
	return func(o *buildOptions) { o.stormRadius = rule }
}

// WithAmbientPressure sets the background pressure (Pascals) that central
// pressure is capped at.
func WithAmbientPressure(pascals float64) Option {
	return func(o *buildOptions) { o.ambientPressure = pascals }
}

// Build assembles a complete storm track: one sample per grid entry, in grid
// order. The grid holds elapsed seconds from epoch and must be strictly
// increasing with at least 2 entries. Eye position and intensity come from
// the supplied rules; radius of maximum winds and central pressure are
// derived from the intensity and latitude per sample.
//
// A failed build returns no partial track.
func Build(grid []float64, epoch time.Time, eye EyeRule, intensity IntensityRule, opts ...Option) (Track, error) {
	if len(grid) < 2 {
		return Track{}, fmt.Errorf("%w: got %d", ErrTimeGridTooShort, len(grid))
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			return Track{}, fmt.Errorf("%w: grid[%d]=%g follows grid[%d]=%g",
				ErrTimeGridNotIncreasing, i, grid[i], i-1, grid[i-1])
		}
	}

	options := buildOptions{
		stormRadius:     ConstantRadius(DefaultStormRadius),
		ambientPressure: DefaultAmbientPressure,
	}
	for _, opt := range opts {
		opt(&options)
	}

	samples := make([]Sample, len(grid))
	for i, elapsed := range grid {
		lon, lat := eye(elapsed)

		windSpeed := intensity(elapsed)
		if windSpeed < 0 {
			return Track{}, fmt.Errorf("%w: %g m/s at t=%g s", ErrNegativeIntensity, windSpeed, elapsed)
		}

		pressure := centralPressure(windSpeed)
		if pressure > options.ambientPressure {
			pressure = options.ambientPressure
		}

		windRadius := maxWindRadius(windSpeed, lat)
		outerRadius := options.stormRadius(elapsed)
		if outerRadius < windRadius {
			outerRadius = windRadius
		}

		samples[i] = Sample{
			Time:            epoch.Add(time.Duration(elapsed * float64(time.Second))),
			ElapsedSeconds:  elapsed,
			EyeLon:          lon,
			EyeLat:          lat,
			MaxWindSpeed:    windSpeed,
			MaxWindRadius:   windRadius,
			CentralPressure: pressure,
			StormRadius:     outerRadius,
		}
	}

	return Track{
		Epoch:   epoch,
		BuiltAt: clock.Now().UTC(),
		Samples: samples,
	}, nil
}
