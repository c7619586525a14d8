package storm

import "time"

// Sample is one row of a storm track: the full storm description at a
// single instant. Samples are plain values and are never mutated after the
// track is built.
type Sample struct {
	Time            time.Time // Epoch + ElapsedSeconds
	ElapsedSeconds  float64   // seconds since the track epoch
	EyeLon          float64   // degrees
	EyeLat          float64   // degrees
	MaxWindSpeed    float64   // m/s
	MaxWindRadius   float64   // meters
	CentralPressure float64   // Pascals
	StormRadius     float64   // meters, outer extent of storm influence
}

// Track is an ordered, time-ascending sequence of samples built once by
// Build. It is held in memory or handed to the stormfile serializer; no
// component mutates it after assembly.
type Track struct {
	Epoch   time.Time // absolute time of elapsed second 0
	BuiltAt time.Time // assembly timestamp, from the package clock
	Samples []Sample
}
