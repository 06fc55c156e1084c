// Package builtin provides named handlers that manifests can reference
// without any Go code of their own
package builtin

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/toyz/archipelago/pkg/archipelago"
	"github.com/toyz/archipelago/pkg/manifest"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the request-scoped key the request id is stored under
const RequestIDKey = "request_id"

// RegisterAll adds every builtin handler to handlers
func RegisterAll(handlers *manifest.Handlers, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	builtins := map[string]archipelago.HandlerFunc{
		"request-id":  RequestID,
		"log-request": LogRequest(logger),
		"ok":          OK,
		"params":      Params,
		"no-content":  NoContent,
		"not-found":   NotFound,
	}
	for name, handler := range builtins {
		if err := handlers.Register(name, handler); err != nil {
			return err
		}
	}
	return nil
}

// RequestID reuses the incoming X-Request-ID or generates one, echoes it on
// the response and stores it for later handlers
func RequestID(c archipelago.RequestContext) error {
	id := c.Header(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Response().SetHeader(RequestIDHeader, id)
	return nil
}

// LogRequest logs each request that reaches it
func LogRequest(logger *slog.Logger) archipelago.HandlerFunc {
	return func(c archipelago.RequestContext) error {
		attrs := []any{"method", c.Method(), "path", c.Path()}
		if id, ok := c.Get(RequestIDKey).(string); ok {
			attrs = append(attrs, "request_id", id)
		}
		logger.InfoContext(c.Context(), "request", attrs...)
		return nil
	}
}

// OK responds with {"status": "ok"}
func OK(c archipelago.RequestContext) error {
	return c.Response().JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Params responds with the matched path parameters
func Params(c archipelago.RequestContext) error {
	params := make(map[string]string)
	for _, name := range c.ParamNames() {
		params[name] = c.Param(name)
	}
	return c.Response().JSON(http.StatusOK, map[string]any{
		"method": c.Method(),
		"path":   c.Path(),
		"params": params,
	})
}

// NoContent responds with 204
func NoContent(c archipelago.RequestContext) error {
	return c.Response().NoContent(http.StatusNoContent)
}

// NotFound fails the request with 404
func NotFound(archipelago.RequestContext) error {
	return archipelago.NewHTTPError(http.StatusNotFound)
}
