package stormfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/storm"
)

// writers maps format identifiers to their row emitters. Adding a format
// means adding an entry here and in readers.
var writers = map[string]func(io.Writer, storm.Track) error{
	FormatGeoClaw: writeGeoClaw,
}

// Write serializes the track to w in the named format.
func Write(w io.Writer, track storm.Track, formatID string) error {
	emit, ok := writers[formatID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatID)
	}
	return emit(w, track)
}

// WriteFile serializes the track to path, truncating any prior content.
// The write is atomic: content goes to a temporary file in the destination
// directory which is renamed into place only after a successful write and
// sync. On any failure the temporary file is removed and the destination is
// left untouched.
func WriteFile(path string, track storm.Track, formatID string) error {
	if _, ok := writers[formatID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatID)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp storm file: %w", err)
	}

	if err := Write(tmp, track, formatID); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync storm file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close storm file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename storm file: %w", err)
	}
	return nil
}

func writeGeoClaw(w io.Writer, track storm.Track) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %d %s\n", FormatGeoClaw, len(track.Samples), track.Epoch.UTC().Format(time.RFC3339))
	fmt.Fprintln(bw, unitsGeoClaw)

	for _, s := range track.Samples {
		fmt.Fprintf(bw, "%.8e %.8e %.8e %.8e %.8e %.8e %.8e\n",
			s.ElapsedSeconds, s.EyeLon, s.EyeLat,
			s.MaxWindSpeed, s.MaxWindRadius, s.CentralPressure, s.StormRadius)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write storm file: %w", err)
	}
	return nil
}
