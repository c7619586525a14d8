package storm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentralPressureKnownValues(t *testing.T) {
	// Hand-evaluated from the Kossin quadratic (millibars × 100).
	assert.InDelta(t, 102136.0, centralPressure(0), 1e-9)
	assert.InDelta(t, 99711.0, centralPressure(50), 1e-9)  // 1021.36 - 6.25 - 18
	assert.InDelta(t, 97656.0, centralPressure(80), 1e-9)  // 1021.36 - 16 - 28.8
}

func TestCentralPressureMonotonicOverCalibratedRange(t *testing.T) {
	prev := centralPressure(10)
	for v := 10.5; v <= 90; v += 0.5 {
		p := centralPressure(v)
		assert.LessOrEqual(t, p, prev, "pressure must not rise with wind speed at V=%g", v)
		prev = p
	}
}

func TestCentralPressurePure(t *testing.T) {
	for _, v := range []float64{0, 17.3, 50, 80, 123.456} {
		assert.Equal(t, centralPressure(v), centralPressure(v))
	}
}

func TestMaxWindRadius(t *testing.T) {
	t.Run("tropical-cyclone-range output is tens of kilometers", func(t *testing.T) {
		r := maxWindRadius(50, 15)
		assert.Greater(t, r, 10.0e3)
		assert.Less(t, r, 200.0e3)
	})

	t.Run("grows away from the equator", func(t *testing.T) {
		// The cosine correction shrinks toward the poles, so less is
		// subtracted at higher latitude.
		assert.Greater(t, maxWindRadius(50, 30), maxWindRadius(50, 15))
	})

	t.Run("finite across the calibrated wind range", func(t *testing.T) {
		for v := 10.0; v <= 90; v++ {
			r := maxWindRadius(v, 15)
			assert.False(t, math.IsNaN(r) || math.IsInf(r, 0))
			assert.Positive(t, r)
		}
	})

	t.Run("pure", func(t *testing.T) {
		assert.Equal(t, maxWindRadius(63.7, 21.2), maxWindRadius(63.7, 21.2))
	})
}
