package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/couchcryptid/storm-track-gen/internal/adapter/http"
	"github.com/couchcryptid/storm-track-gen/internal/generator"
	"github.com/couchcryptid/storm-track-gen/internal/observability"
	"github.com/couchcryptid/storm-track-gen/internal/stormfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer() *httpadapter.Server {
	g := generator.New(nil, discardLogger(), observability.NewMetricsForTesting())
	return httpadapter.NewServer(":0", g, stormfile.FormatGeoClaw, discardLogger())
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzBeforeAndAfterFirstRun(t *testing.T) {
	srv := newTestServer()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/storms", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestGenerateDefaultScenario(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/storms", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Run-Id"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "geoclaw-1 16 "))

	track, err := stormfile.Read(rec.Body)
	require.NoError(t, err)
	assert.Len(t, track.Samples, 16)
}

func TestGeneratePartialScenarioBody(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/storms",
		strings.NewReader(`{"time":{"start":0,"end":43200,"steps":3}}`))

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "geoclaw-1 3 "))
}

func TestGenerateBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"malformed JSON", "/v1/storms", "{nope"},
		{"invalid grid", "/v1/storms", `{"time":{"points":[100,50]}}`},
		{"unknown intensity kind", "/v1/storms", `{"intensity":{"kind":"sawtooth"}}`},
		{"unknown format", "/v1/storms?format=atcf-9", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer()
			rec := httptest.NewRecorder()
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.target, body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
