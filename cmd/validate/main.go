// Command validate performs integrity checks on a written storm file: header
// syntax, sample-count agreement, time-grid monotonicity, radius ordering,
// and pressure bounds. It exists so a storm file can be vetted before being
// handed to the surge-forcing model.
//
// Usage:
//
//	go run ./cmd/validate -file my_storm.storm
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/storm-track-gen/internal/storm"
	"github.com/couchcryptid/storm-track-gen/internal/stormfile"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	path := flag.String("file", "", "storm file to validate")
	ambient := flag.Float64("ambient", storm.DefaultAmbientPressure, "ambient pressure bound in Pascals")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*path, *ambient); code != 0 {
		os.Exit(code)
	}
}

func run(path string, ambient float64) int {
	fmt.Println("=== Storm File Validation ===")
	fmt.Println()

	track, err := stormfile.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse storm file: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateTimeGrid(track),
		validateFiniteness(track),
		validateRadii(track),
		validatePressure(track, ambient),
	}

	allPassed := true
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		allPassed = false
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("validation FAILED")
		return 1
	}
	fmt.Printf("validation passed: %d samples, epoch %s\n", len(track.Samples), track.Epoch.Format("2006-01-02T15:04:05Z"))
	return 0
}

func validateTimeGrid(track storm.Track) *phase {
	p := &phase{name: "time grid"}
	if len(track.Samples) < 2 {
		p.errorf("only %d samples; a track needs at least 2", len(track.Samples))
		return p
	}
	for i := 1; i < len(track.Samples); i++ {
		prev, cur := track.Samples[i-1], track.Samples[i]
		if cur.ElapsedSeconds <= prev.ElapsedSeconds {
			p.errorf("row %d: t=%g does not increase past t=%g", i+1, cur.ElapsedSeconds, prev.ElapsedSeconds)
		}
	}
	return p
}

func validateFiniteness(track storm.Track) *phase {
	p := &phase{name: "finite values"}
	for i, s := range track.Samples {
		for name, v := range map[string]float64{
			"eye_longitude":    s.EyeLon,
			"eye_latitude":     s.EyeLat,
			"max_wind_speed":   s.MaxWindSpeed,
			"max_wind_radius":  s.MaxWindRadius,
			"central_pressure": s.CentralPressure,
			"storm_radius":     s.StormRadius,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				p.errorf("row %d: %s is %g", i+1, name, v)
			}
		}
	}
	return p
}

func validateRadii(track storm.Track) *phase {
	p := &phase{name: "radius ordering"}
	for i, s := range track.Samples {
		if s.MaxWindRadius < 0 {
			p.errorf("row %d: negative max wind radius %g m", i+1, s.MaxWindRadius)
		}
		if s.StormRadius < s.MaxWindRadius {
			p.errorf("row %d: storm radius %g m inside max wind radius %g m", i+1, s.StormRadius, s.MaxWindRadius)
		}
	}
	return p
}

func validatePressure(track storm.Track, ambient float64) *phase {
	p := &phase{name: "pressure bounds"}
	for i, s := range track.Samples {
		if s.MaxWindSpeed < 0 {
			p.errorf("row %d: negative wind speed %g m/s", i+1, s.MaxWindSpeed)
		}
		if s.MaxWindSpeed > 0 && s.CentralPressure > ambient {
			p.errorf("row %d: central pressure %g Pa above ambient %g Pa", i+1, s.CentralPressure, ambient)
		}
		if s.CentralPressure <= 0 {
			p.errorf("row %d: non-physical central pressure %g Pa", i+1, s.CentralPressure)
		}
	}
	return p
}
