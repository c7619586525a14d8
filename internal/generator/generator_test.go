package generator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/storm-track-gen/internal/observability"
	"github.com/couchcryptid/storm-track-gen/internal/scenario"
	"github.com/couchcryptid/storm-track-gen/internal/storm"
	"github.com/couchcryptid/storm-track-gen/internal/stormfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	calls []Result
	err   error
}

func (p *recordingPublisher) PublishTrackWritten(_ context.Context, res Result) error {
	p.calls = append(p.calls, res)
	return p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGenerator(pub Publisher) *Generator {
	return New(pub, discardLogger(), observability.NewMetricsForTesting())
}

func TestGenerateWritesAndNotifies(t *testing.T) {
	pub := &recordingPublisher{}
	g := newGenerator(pub)
	path := filepath.Join(t.TempDir(), "my_storm.storm")

	res, err := g.Generate(context.Background(), scenario.Default(), path, stormfile.FormatGeoClaw)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, path, res.Path)
	assert.Len(t, res.Track.Samples, 16)

	parsed, err := stormfile.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, parsed.Samples, 16)

	require.Len(t, pub.calls, 1)
	assert.Equal(t, res.RunID, pub.calls[0].RunID)
}

func TestGenerateInMemoryOnly(t *testing.T) {
	pub := &recordingPublisher{}
	g := newGenerator(pub)

	res, err := g.Generate(context.Background(), scenario.Default(), "", stormfile.FormatGeoClaw)
	require.NoError(t, err)

	assert.Empty(t, res.Path)
	assert.Len(t, res.Track.Samples, 16)
	assert.Empty(t, pub.calls, "no file written, nothing to announce")
}

func TestGenerateBuildError(t *testing.T) {
	g := newGenerator(nil)
	sc := scenario.Default()
	sc.Time.Points = []float64{100, 50}

	_, err := g.Generate(context.Background(), sc, "", stormfile.FormatGeoClaw)
	require.Error(t, err)
	assert.ErrorIs(t, err, storm.ErrInvalidTimeGrid)
	assert.Error(t, g.CheckReadiness(context.Background()), "failed run must not mark ready")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	g := newGenerator(nil)
	dir := t.TempDir()

	_, err := g.Generate(context.Background(), scenario.Default(), filepath.Join(dir, "x.storm"), "atcf-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, stormfile.ErrUnsupportedFormat)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no partial file on failure")
}

func TestGeneratePublishFailureIsNonFatal(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	g := newGenerator(pub)
	path := filepath.Join(t.TempDir(), "my_storm.storm")

	_, err := g.Generate(context.Background(), scenario.Default(), path, stormfile.FormatGeoClaw)
	require.NoError(t, err, "the file is on disk; a lost notification does not fail the run")
	assert.FileExists(t, path)
}

func TestCheckReadiness(t *testing.T) {
	g := newGenerator(nil)
	assert.Error(t, g.CheckReadiness(context.Background()))

	_, err := g.Generate(context.Background(), scenario.Default(), "", stormfile.FormatGeoClaw)
	require.NoError(t, err)
	assert.NoError(t, g.CheckReadiness(context.Background()))
}
