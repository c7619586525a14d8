package stormfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/storm"
)

const geoClawColumns = 7

// Read parses a storm file produced by Write. It mirrors the downstream
// surge-forcing reader and exists for round-trip verification and the
// validate command; the returned track carries a zero BuiltAt.
func Read(r io.Reader) (storm.Track, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return storm.Track{}, fmt.Errorf("storm file: missing header: %w", io.ErrUnexpectedEOF)
	}
	formatID, count, epoch, err := parseHeader(scanner.Text())
	if err != nil {
		return storm.Track{}, err
	}
	if formatID != FormatGeoClaw {
		return storm.Track{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatID)
	}

	if !scanner.Scan() {
		return storm.Track{}, fmt.Errorf("storm file: missing units line: %w", io.ErrUnexpectedEOF)
	}
	if units := strings.TrimSpace(scanner.Text()); units != unitsGeoClaw {
		return storm.Track{}, fmt.Errorf("storm file: units %q do not match %q", units, unitsGeoClaw)
	}

	samples := make([]storm.Sample, 0, count)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sample, err := parseRow(line, epoch)
		if err != nil {
			return storm.Track{}, fmt.Errorf("storm file: row %d: %w", len(samples)+1, err)
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return storm.Track{}, fmt.Errorf("read storm file: %w", err)
	}
	if len(samples) != count {
		return storm.Track{}, fmt.Errorf("storm file: header declares %d samples, found %d", count, len(samples))
	}

	return storm.Track{Epoch: epoch, Samples: samples}, nil
}

// ReadFile opens and parses a storm file from path.
func ReadFile(path string) (storm.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return storm.Track{}, fmt.Errorf("open storm file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func parseHeader(line string) (formatID string, count int, epoch time.Time, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", 0, time.Time{}, fmt.Errorf("storm file: malformed header %q", line)
	}

	count, err = strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return "", 0, time.Time{}, fmt.Errorf("storm file: bad sample count %q", fields[1])
	}

	epoch, err = time.Parse(time.RFC3339, fields[2])
	if err != nil {
		return "", 0, time.Time{}, fmt.Errorf("storm file: bad epoch: %w", err)
	}

	return fields[0], count, epoch, nil
}

func parseRow(line string, epoch time.Time) (storm.Sample, error) {
	fields := strings.Fields(line)
	if len(fields) != geoClawColumns {
		return storm.Sample{}, fmt.Errorf("expected %d columns, got %d", geoClawColumns, len(fields))
	}

	values := make([]float64, geoClawColumns)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return storm.Sample{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		values[i] = v
	}

	return storm.Sample{
		Time:            epoch.Add(time.Duration(values[0] * float64(time.Second))),
		ElapsedSeconds:  values[0],
		EyeLon:          values[1],
		EyeLat:          values[2],
		MaxWindSpeed:    values[3],
		MaxWindRadius:   values[4],
		CentralPressure: values[5],
		StormRadius:     values[6],
	}, nil
}
