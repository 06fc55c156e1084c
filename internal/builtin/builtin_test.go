package builtin

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/archipelago/pkg/archipelago"
	"github.com/toyz/archipelago/pkg/archipelago/adapters"
	"github.com/toyz/archipelago/pkg/manifest"
)

func newHandlers(t *testing.T, logger *slog.Logger) *manifest.Handlers {
	t.Helper()
	handlers := manifest.NewHandlers()
	require.NoError(t, RegisterAll(handlers, logger))
	return handlers
}

func serve(t *testing.T, handlers *manifest.Handlers, pattern archipelago.Pattern, names []string, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	chain, err := handlers.Resolve(names)
	require.NoError(t, err)

	adapter := adapters.NewChiAdapter(chi.NewRouter())
	adapter.RegisterRoute(archipelago.VerbGet, pattern, chain...)

	rec := httptest.NewRecorder()
	adapter.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAll(t *testing.T) {
	handlers := newHandlers(t, nil)
	assert.Equal(t, []string{"log-request", "no-content", "not-found", "ok", "params", "request-id"}, handlers.Names())

	assert.Error(t, RegisterAll(handlers, nil), "registering twice collides")
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	handlers := newHandlers(t, nil)

	rec := serve(t, handlers, "/health", []string{"request-id", "ok"}, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(t, handlers, "/health", []string{"request-id", "ok"}, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestLogRequest(t *testing.T) {
	var buf bytes.Buffer
	handlers := newHandlers(t, slog.New(slog.NewTextHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/orders/9", nil)
	req.Header.Set(RequestIDHeader, "trace-1")
	serve(t, handlers, "/orders/:id", []string{"request-id", "log-request", "no-content"}, req)

	assert.Contains(t, buf.String(), "path=/orders/9")
	assert.Contains(t, buf.String(), "request_id=trace-1")
}

func TestParams(t *testing.T) {
	handlers := newHandlers(t, nil)

	rec := serve(t, handlers, "/orders/:id/*", []string{"params"}, httptest.NewRequest(http.MethodGet, "/orders/9/lines/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Method string            `json:"method"`
		Params map[string]string `json:"params"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.MethodGet, body.Method)
	assert.Equal(t, map[string]string{"id": "9", "*": "lines/2"}, body.Params)
}

func TestNotFoundStopsChain(t *testing.T) {
	handlers := newHandlers(t, nil)

	rec := serve(t, handlers, "/gone", []string{"not-found", "ok"}, httptest.NewRequest(http.MethodGet, "/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := serve(t, newHandlers(t, nil), "/", []string{"no-content"}, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
