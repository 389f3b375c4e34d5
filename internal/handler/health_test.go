package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/paid-parking/backend/internal/handler"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	// gen.NewStrictHandler adapts the StrictServerInterface implementation to
	// the ServerInterface the generated chi router expects.
	h := gen.Handler(gen.NewStrictHandler(handler.NewHealthHandler(), nil))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body gen.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

// pingFunc adapts a function to handler.Pinger.
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestGetReady(t *testing.T) {
	tests := []struct {
		name string
		ping error
		want int
	}{
		{name: "db up", want: http.StatusOK},
		{name: "db down", ping: errors.New("connection refused"), want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := handler.NewServer(nil, nil, nil, pingFunc(func(context.Context) error { return tt.ping }), quietLog)

			rec := httptest.NewRecorder()
			handler.Handler(srv).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// TestGetOpenAPI_documentsEveryRoute serves the embedded document and checks
// that each public path is described.
func TestGetOpenAPI_documentsEveryRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.Handler(handler.NewHealthHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	var doc struct {
		Paths map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))

	for _, path := range []string{
		"/healthz", "/readyz", "/openapi.yaml", "/events", "/stays", "/stays/open", "/stays/closed",
		"/plates/{plate}/stays", "/plates/{plate}/stays/open", "/plates/{plate}/invoices", "/invoices",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestUnknownRoute_JSON404(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.Handler(handler.NewHealthHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
}
