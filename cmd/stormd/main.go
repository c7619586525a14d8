// Command stormd serves storm-track generation over HTTP. On startup it
// runs the configured scenario once as a self-test, writing the storm file
// to the output directory; the service reports ready only after that run
// succeeds. Each written file can optionally be announced on a Kafka topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/storm-track-gen/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/storm-track-gen/internal/adapter/kafka"
	"github.com/couchcryptid/storm-track-gen/internal/config"
	"github.com/couchcryptid/storm-track-gen/internal/generator"
	"github.com/couchcryptid/storm-track-gen/internal/observability"
	"github.com/couchcryptid/storm-track-gen/internal/scenario"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Notification sink (feature-flagged via KAFKA_ENABLED).
	var publisher generator.Publisher
	var closer interface{ Close() error }
	if cfg.KafkaEnabled {
		p := kafkaadapter.NewPublisher(cfg, logger)
		publisher, closer = p, p
		metrics.PublisherEnabled.Set(1)
		logger.Info("kafka notifications enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka notifications disabled")
	}

	g := generator.New(publisher, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, g, cfg.StormFormat, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup self-test: generate the configured scenario into the output
	// directory. Readiness flips only once this succeeds.
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "path", cfg.ScenarioPath, "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Error("failed to create output dir", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}
	outPath := filepath.Join(cfg.OutputDir, "my_storm.storm")
	if _, err := g.Generate(ctx, sc, outPath, cfg.StormFormat); err != nil {
		logger.Error("startup generation failed", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
