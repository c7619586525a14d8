// Package generator orchestrates one storm-track generation run: lower the
// scenario to builder rules, assemble the track, serialize it, and announce
// the written file to interested consumers.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/observability"
	"github.com/couchcryptid/storm-track-gen/internal/scenario"
	"github.com/couchcryptid/storm-track-gen/internal/storm"
	"github.com/couchcryptid/storm-track-gen/internal/stormfile"
	"github.com/google/uuid"
)

// Result describes a completed generation run.
type Result struct {
	RunID    string
	FormatID string
	Path     string // empty when the track was not persisted
	Track    storm.Track
}

// Publisher announces a written storm file to downstream consumers.
type Publisher interface {
	PublishTrackWritten(ctx context.Context, res Result) error
}

// Generator runs scenario -> track -> storm file. Safe for concurrent use.
type Generator struct {
	publisher Publisher // nil disables notifications
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Generator. Pass a nil publisher to disable notifications.
func New(publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one generation run has completed,
// or an error describing why the service is not yet ready.
func (g *Generator) CheckReadiness(_ context.Context) error {
	if !g.ready.Load() {
		return errors.New("no storm track generated yet")
	}
	return nil
}

// Generate builds a track from the scenario and, when outPath is non-empty,
// writes it there in the named format. Notification failures are logged and
// counted but do not fail the run; the written file is already on disk.
func (g *Generator) Generate(ctx context.Context, sc *scenario.Scenario, outPath, formatID string) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := g.logger.With("run_id", runID)

	track, err := g.build(sc)
	if err != nil {
		g.metrics.BuildErrors.Inc()
		log.Error("track build failed", "error", err)
		return Result{}, err
	}
	g.metrics.TracksBuilt.Inc()
	g.metrics.SamplesPerTrack.Observe(float64(len(track.Samples)))

	res := Result{RunID: runID, FormatID: formatID, Path: outPath, Track: track}

	if outPath != "" {
		if err := stormfile.WriteFile(outPath, track, formatID); err != nil {
			g.metrics.WriteErrors.Inc()
			log.Error("storm file write failed", "path", outPath, "error", err)
			return Result{}, err
		}
		g.metrics.FilesWritten.Inc()
		log.Info("storm file written",
			"path", outPath,
			"format", formatID,
			"samples", len(track.Samples),
		)

		if g.publisher != nil {
			if err := g.publisher.PublishTrackWritten(ctx, res); err != nil {
				g.metrics.PublishErrors.Inc()
				log.Warn("track-written notification failed", "error", err)
			} else {
				g.metrics.NotificationsPublished.Inc()
			}
		}
	}

	g.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	g.ready.Store(true)
	return res, nil
}

func (g *Generator) build(sc *scenario.Scenario) (storm.Track, error) {
	if err := sc.Validate(); err != nil {
		return storm.Track{}, err
	}
	epoch, err := sc.EpochTime()
	if err != nil {
		return storm.Track{}, err
	}
	intensity, err := sc.IntensityRule()
	if err != nil {
		return storm.Track{}, err
	}
	return storm.Build(sc.Grid(), epoch, sc.EyeRule(), intensity, sc.Options()...)
}
