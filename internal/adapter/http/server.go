package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/storm-track-gen/internal/generator"
	"github.com/couchcryptid/storm-track-gen/internal/scenario"
	"github.com/couchcryptid/storm-track-gen/internal/storm"
	"github.com/couchcryptid/storm-track-gen/internal/stormfile"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// TrackBuilder runs a generation request.
type TrackBuilder interface {
	CheckReadiness(ctx context.Context) error
	Generate(ctx context.Context, sc *scenario.Scenario, outPath, formatID string) (generator.Result, error)
}

// Server exposes health, readiness, metrics, and storm generation endpoints.
type Server struct {
	httpServer    *http.Server
	builder       TrackBuilder
	defaultFormat string
	logger        *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// POST /v1/storms routes.
func NewServer(addr string, builder TrackBuilder, defaultFormat string, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		builder:       builder,
		defaultFormat: defaultFormat,
		logger:        logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(builder))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/storms", s.handleGenerate)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleGenerate builds a track from the posted scenario and streams the
// storm file back as text. The request body is a partial scenario JSON laid
// over the built-in defaults; an empty body runs the defaults as-is. The
// format query parameter selects the serialization format.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sc := scenario.Default()
	if err := json.NewDecoder(r.Body).Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid scenario body: " + err.Error()})
		return
	}

	formatID := r.URL.Query().Get("format")
	if formatID == "" {
		formatID = s.defaultFormat
	}
	if !stormfile.Supported(formatID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported storm file format: " + formatID})
		return
	}

	res, err := s.builder.Generate(r.Context(), sc, "", formatID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scenario.ErrInvalidScenario) ||
			errors.Is(err, storm.ErrInvalidTimeGrid) ||
			errors.Is(err, storm.ErrNegativeIntensity) ||
			errors.Is(err, stormfile.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Run-Id", res.RunID)
	if err := stormfile.Write(w, res.Track, formatID); err != nil {
		s.logger.Error("stream storm file failed", "run_id", res.RunID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
