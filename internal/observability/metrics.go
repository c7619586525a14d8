package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// track generator.
type Metrics struct {
	TracksBuilt  prometheus.Counter
	BuildErrors  prometheus.Counter
	FilesWritten prometheus.Counter
	WriteErrors  prometheus.Counter

	SamplesPerTrack prometheus.Histogram
	BuildDuration   prometheus.Histogram

	// Notification sink metrics.
	NotificationsPublished prometheus.Counter
	PublishErrors          prometheus.Counter
	PublisherEnabled       prometheus.Gauge
}

// NewMetrics creates and registers all generator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		TracksBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "tracks_built_total",
			Help:      "Total storm tracks assembled successfully.",
		}),
		BuildErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "build_errors_total",
			Help:      "Total track assembly failures.",
		}),
		FilesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "files_written_total",
			Help:      "Total storm files written to disk.",
		}),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "write_errors_total",
			Help:      "Total storm file write failures.",
		}),
		SamplesPerTrack: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stormgen",
			Name:      "samples_per_track",
			Help:      "Number of samples per assembled track.",
			Buckets:   []float64{2, 4, 8, 16, 32, 64, 128, 256},
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stormgen",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete build-write-notify cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		NotificationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "notifications_published_total",
			Help:      "Total track-written notifications published to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stormgen",
			Name:      "publish_errors_total",
			Help:      "Total notification publish failures.",
		}),
		PublisherEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "stormgen",
			Name:      "publisher_enabled",
			Help:      "1 when the Kafka notification sink is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.TracksBuilt,
		m.BuildErrors,
		m.FilesWritten,
		m.WriteErrors,
		m.SamplesPerTrack,
		m.BuildDuration,
		m.NotificationsPublished,
		m.PublishErrors,
		m.PublisherEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		TracksBuilt:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "tracks_built_total"}),
		BuildErrors:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "build_errors_total"}),
		FilesWritten:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "files_written_total"}),
		WriteErrors:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "write_errors_total"}),
		SamplesPerTrack:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "stormgen", Name: "samples_per_track"}),
		BuildDuration:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "stormgen", Name: "build_duration_seconds"}),
		NotificationsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "notifications_published_total"}),
		PublishErrors:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stormgen", Name: "publish_errors_total"}),
		PublisherEnabled:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "stormgen", Name: "publisher_enabled"}),
	}
}
