package scenario

import (
	"math"
	"testing"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/storm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.Validate())

	epoch, err := sc.EpochTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2008, time.September, 13, 7, 0, 0, 0, time.UTC), epoch)

	grid := sc.Grid()
	require.Len(t, grid, 16)
	assert.Equal(t, 0.0, grid[0])
	assert.Equal(t, 345600.0, grid[15])
}

func TestDefaultBuildsReferenceTrack(t *testing.T) {
	sc := Default()
	epoch, err := sc.EpochTime()
	require.NoError(t, err)
	intensity, err := sc.IntensityRule()
	require.NoError(t, err)

	track, err := storm.Build(sc.Grid(), epoch, sc.EyeRule(), intensity, sc.Options()...)
	require.NoError(t, err)
	require.Len(t, track.Samples, 16)

	// Eye tracks northwest: longitude falls, latitude climbs.
	first, last := track.Samples[0], track.Samples[15]
	assert.Equal(t, -80.0, first.EyeLon)
	assert.Equal(t, 15.0, first.EyeLat)
	assert.Less(t, last.EyeLon, first.EyeLon)
	assert.Greater(t, last.EyeLat, first.EyeLat)

	// Wind peaks mid-track and the pressure trough follows it.
	var peakIdx, troughIdx int
	for i, s := range track.Samples {
		if s.MaxWindSpeed > track.Samples[peakIdx].MaxWindSpeed {
			peakIdx = i
		}
		if s.CentralPressure < track.Samples[troughIdx].CentralPressure {
			troughIdx = i
		}
	}
	assert.Equal(t, peakIdx, troughIdx)
	assert.InDelta(t, 100.0, track.Samples[peakIdx].MaxWindSpeed, 5.0)

	for _, s := range track.Samples {
		assert.Equal(t, 300e3, s.StormRadius)
		assert.GreaterOrEqual(t, s.StormRadius, s.MaxWindRadius)
		assert.LessOrEqual(t, s.CentralPressure, sc.AmbientPressure)
	}
}

func TestEyeRuleHeadingDecomposition(t *testing.T) {
	sc := Default()
	sc.Eye = EyeSpec{StartLon: -80, StartLat: 15, SpeedKmh: 15, HeadingDeg: 315}

	lon, lat := sc.EyeRule()(3600)

	// 15 km/h northwest: equal-magnitude westward and northward components.
	step := 15.0 / kmPerDegree * math.Sqrt2 / 2
	assert.InDelta(t, -80-step, lon, 1e-9)
	assert.InDelta(t, 15+step, lat, 1e-9)
}

func TestIntensityRuleKinds(t *testing.T) {
	t.Run("gaussian defaults center and width from the grid", func(t *testing.T) {
		sc := Default()
		rule, err := sc.IntensityRule()
		require.NoError(t, err)
		assert.InDelta(t, 100.0, rule(172800), 1e-9, "peak at the grid midpoint")
		assert.Less(t, rule(0), rule(172800))
	})

	t.Run("table", func(t *testing.T) {
		sc := Default()
		sc.Intensity = IntensitySpec{
			Kind:   "table",
			Times:  []float64{0, 21600, 43200},
			Speeds: []float64{50, 80, 50},
		}
		rule, err := sc.IntensityRule()
		require.NoError(t, err)
		assert.Equal(t, 80.0, rule(21600))
	})

	t.Run("unknown kind", func(t *testing.T) {
		sc := Default()
		sc.Intensity.Kind = "sawtooth"
		_, err := sc.IntensityRule()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScenario)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"bad epoch", func(s *Scenario) { s.Epoch = "next tuesday" }},
		{"one step", func(s *Scenario) { s.Time.Steps = 1 }},
		{"end before start", func(s *Scenario) { s.Time.Start = 100; s.Time.End = 50 }},
		{"single explicit point", func(s *Scenario) { s.Time.Points = []float64{0} }},
		{"negative peak", func(s *Scenario) { s.Intensity.Peak = -1 }},
		{"empty table", func(s *Scenario) { s.Intensity.Kind = "table" }},
		{"unknown intensity kind", func(s *Scenario) { s.Intensity.Kind = "sawtooth" }},
		{"negative storm radius", func(s *Scenario) { s.StormRadius = -1 }},
		{"zero ambient pressure", func(s *Scenario) { s.AmbientPressure = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := Default()
			tt.mutate(sc)
			err := sc.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestGridExplicitPoints(t *testing.T) {
	sc := Default()
	sc.Time.Points = []float64{0, 21600, 43200}

	grid := sc.Grid()
	assert.Equal(t, []float64{0, 21600, 43200}, grid)

	// Returned grid is a copy; mutating it must not alias the scenario.
	grid[0] = -1
	assert.Equal(t, 0.0, sc.Time.Points[0])
}
