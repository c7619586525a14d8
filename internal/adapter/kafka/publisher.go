package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/config"
	"github.com/couchcryptid/storm-track-gen/internal/generator"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher announces written storm files on a Kafka topic so downstream
// surge runs can pick them up. It implements generator.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured notification topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishTrackWritten serializes and publishes a track-written notification.
func (p *Publisher) PublishTrackWritten(ctx context.Context, res generator.Result) error {
	msg, err := serializeToMessage(res)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// trackWrittenEvent is the notification payload: enough for a consumer to
// locate the file and sanity-check it without parsing the storm format.
type trackWrittenEvent struct {
	RunID       string    `json:"run_id"`
	Path        string    `json:"path"`
	Format      string    `json:"format"`
	Epoch       time.Time `json:"epoch"`
	BuiltAt     time.Time `json:"built_at"`
	Samples     int       `json:"samples"`
	PeakWind    float64   `json:"peak_wind_mps"`
	MinPressure float64   `json:"min_pressure_pa"`
}

// serializeToMessage marshals a generation result into a Kafka message.
func serializeToMessage(res generator.Result) (kafkago.Message, error) {
	event := trackWrittenEvent{
		RunID:   res.RunID,
		Path:    res.Path,
		Format:  res.FormatID,
		Epoch:   res.Track.Epoch,
		BuiltAt: res.Track.BuiltAt,
		Samples: len(res.Track.Samples),
	}
	for i, s := range res.Track.Samples {
		if i == 0 || s.MaxWindSpeed > event.PeakWind {
			event.PeakWind = s.MaxWindSpeed
		}
		if i == 0 || s.CentralPressure < event.MinPressure {
			event.MinPressure = s.CentralPressure
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize track notification: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(res.RunID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "format", Value: []byte(res.FormatID)},
			{Key: "built_at", Value: []byte(res.Track.BuiltAt.Format(time.RFC3339))},
		},
	}, nil
}
