// Package scenario declares the generation scenario: the physical drivers a
// storm track is built from. Scenarios load from YAML with environment
// overrides and lower into the rule functions the storm builder consumes.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/storm"
)

// ErrInvalidScenario is the sentinel all scenario validation errors wrap.
var ErrInvalidScenario = errors.New("invalid scenario")

// Approximate km per degree of great-circle arc, matching the reference
// surge setup's eye-speed conversion.
const kmPerDegree = 110.0

// Scenario holds every knob for one storm-track generation run.
type Scenario struct {
	// Epoch is the absolute time of elapsed second 0, RFC3339.
	Epoch string `koanf:"epoch" json:"epoch"`

	Time      TimeSpec      `koanf:"time" json:"time"`
	Eye       EyeSpec       `koanf:"eye" json:"eye"`
	Intensity IntensitySpec `koanf:"intensity" json:"intensity"`

	// StormRadius is the constant outer storm radius in meters.
	StormRadius float64 `koanf:"storm_radius" json:"storm_radius"`

	// AmbientPressure is the background pressure in Pascals.
	AmbientPressure float64 `koanf:"ambient_pressure" json:"ambient_pressure"`
}

// TimeSpec describes the sampling grid: either a uniform grid over
// [Start, End] with Steps points, or an explicit list of elapsed seconds.
type TimeSpec struct {
	Start  float64   `koanf:"start" json:"start"`
	End    float64   `koanf:"end" json:"end"`
	Steps  int       `koanf:"steps" json:"steps"`
	Points []float64 `koanf:"points" json:"points,omitempty"`
}

// EyeSpec describes constant-velocity eye motion from a start position.
type EyeSpec struct {
	StartLon   float64 `koanf:"start_lon" json:"start_lon"`
	StartLat   float64 `koanf:"start_lat" json:"start_lat"`
	SpeedKmh   float64 `koanf:"speed_kmh" json:"speed_kmh"`
	HeadingDeg float64 `koanf:"heading_deg" json:"heading_deg"` // compass degrees, 0 = north
}

// IntensitySpec describes the max-wind-speed envelope. Kind "gaussian" uses
// Peak/CenterSeconds/WidthSeconds (center and width default to the grid
// midpoint and quarter-span when zero); kind "table" interpolates Times/Speeds.
type IntensitySpec struct {
	Kind          string    `koanf:"kind" json:"kind"`
	Peak          float64   `koanf:"peak" json:"peak"`
	CenterSeconds float64   `koanf:"center_seconds" json:"center_seconds"`
	WidthSeconds  float64   `koanf:"width_seconds" json:"width_seconds"`
	Times         []float64 `koanf:"times" json:"times,omitempty"`
	Speeds        []float64 `koanf:"speeds" json:"speeds,omitempty"`
}

// Default returns the reference Gulf scenario: 16 samples over 4 days, eye
// tracking northwest from (-80, 15) at 15 km/h, a 100 m/s Gaussian wind
// peak, and a 300 km outer radius under 101.3 kPa ambient pressure.
func Default() *Scenario {
	return &Scenario{
		Epoch: "2008-09-13T07:00:00Z",
		Time: TimeSpec{
			Start: 0,
			End:   345600,
			Steps: 16,
		},
		Eye: EyeSpec{
			StartLon:   -80,
			StartLat:   15,
			SpeedKmh:   15,
			HeadingDeg: 315,
		},
		Intensity: IntensitySpec{
			Kind: "gaussian",
			Peak: 100,
		},
		StormRadius:     storm.DefaultStormRadius,
		AmbientPressure: storm.DefaultAmbientPressure,
	}
}

// Validate checks the scenario for internal consistency.
func (s *Scenario) Validate() error {
	if _, err := s.EpochTime(); err != nil {
		return fmt.Errorf("%w: epoch: %v", ErrInvalidScenario, err)
	}

	if len(s.Time.Points) > 0 {
		if len(s.Time.Points) < 2 {
			return fmt.Errorf("%w: explicit grid needs at least 2 points", ErrInvalidScenario)
		}
	} else {
		if s.Time.Steps < 2 {
			return fmt.Errorf("%w: time.steps must be at least 2, got %d", ErrInvalidScenario, s.Time.Steps)
		}
		if s.Time.End <= s.Time.Start {
			return fmt.Errorf("%w: time.end %g must exceed time.start %g", ErrInvalidScenario, s.Time.End, s.Time.Start)
		}
	}

	switch s.Intensity.Kind {
	case "gaussian":
		if s.Intensity.Peak < 0 {
			return fmt.Errorf("%w: intensity.peak must be non-negative", ErrInvalidScenario)
		}
	case "table":
		if len(s.Intensity.Times) != len(s.Intensity.Speeds) || len(s.Intensity.Times) == 0 {
			return fmt.Errorf("%w: intensity table needs matching non-empty times and speeds", ErrInvalidScenario)
		}
	default:
		return fmt.Errorf("%w: unknown intensity kind %q", ErrInvalidScenario, s.Intensity.Kind)
	}

	if s.StormRadius < 0 {
		return fmt.Errorf("%w: storm_radius must be non-negative", ErrInvalidScenario)
	}
	if s.AmbientPressure <= 0 {
		return fmt.Errorf("%w: ambient_pressure must be positive", ErrInvalidScenario)
	}
	return nil
}

// EpochTime parses the epoch field.
func (s *Scenario) EpochTime() (time.Time, error) {
	return time.Parse(time.RFC3339, s.Epoch)
}

// Grid materializes the elapsed-time grid.
func (s *Scenario) Grid() []float64 {
	if len(s.Time.Points) > 0 {
		return append([]float64(nil), s.Time.Points...)
	}
	return storm.UniformGrid(s.Time.Start, s.Time.End, s.Time.Steps)
}

// EyeRule lowers the eye settings into a constant-velocity rule. The compass
// heading and ground speed decompose into degree-per-second components,
// using the flat kmPerDegree conversion of the reference setup.
func (s *Scenario) EyeRule() storm.EyeRule {
	degPerSecond := s.Eye.SpeedKmh / kmPerDegree / 3600.0
	heading := s.Eye.HeadingDeg * math.Pi / 180.0
	lonVel := degPerSecond * math.Sin(heading)
	latVel := degPerSecond * math.Cos(heading)
	return storm.ConstantVelocityEye(s.Eye.StartLon, s.Eye.StartLat, lonVel, latVel)
}

// IntensityRule lowers the intensity settings into an envelope function.
func (s *Scenario) IntensityRule() (storm.IntensityRule, error) {
	switch s.Intensity.Kind {
	case "gaussian":
		center := s.Intensity.CenterSeconds
		width := s.Intensity.WidthSeconds
		if center == 0 || width == 0 {
			grid := s.Grid()
			if len(grid) >= 2 {
				span := grid[len(grid)-1] - grid[0]
				if center == 0 {
					center = grid[0] + span/2
				}
				if width == 0 {
					width = span / 4
				}
			}
		}
		if width == 0 {
			return nil, fmt.Errorf("%w: gaussian intensity needs a non-zero width", ErrInvalidScenario)
		}
		return storm.GaussianIntensity(s.Intensity.Peak, center, width), nil
	case "table":
		return storm.SampledIntensity(s.Intensity.Times, s.Intensity.Speeds)
	default:
		return nil, fmt.Errorf("%w: unknown intensity kind %q", ErrInvalidScenario, s.Intensity.Kind)
	}
}

// Options lowers the radius and pressure settings to builder options.
func (s *Scenario) Options() []storm.Option {
	return []storm.Option{
		storm.WithStormRadius(s.StormRadius),
		storm.WithAmbientPressure(s.AmbientPressure),
	}
}
