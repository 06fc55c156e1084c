package adapters

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// ChiAdapter implements archipelago.Server for a chi router
type ChiAdapter struct {
	router chi.Router

	lifecycle httpLifecycle
}

// NewChiAdapter creates a new chi adapter
func NewChiAdapter(r chi.Router) *ChiAdapter {
	return &ChiAdapter{router: r}
}

// NewDefaultChiAdapter creates a new chi adapter with logging and panic recovery
func NewDefaultChiAdapter() *ChiAdapter {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	return &ChiAdapter{router: r}
}

// chiPath converts a pattern to chi path format
func chiPath(path archipelago.Pattern) string {
	return path.Translate(func(name string) string { return "{" + name + "}" }, "*")
}

// RegisterRoute registers a route with the chi router
func (ca *ChiAdapter) RegisterRoute(method archipelago.Verb, path archipelago.Pattern, handlers ...archipelago.HandlerFunc) {
	handler := ca.convertHandler(archipelago.Chain(handlers...))
	if method == archipelago.VerbAll {
		ca.router.Handle(chiPath(path), handler)
		return
	}
	ca.router.Method(method.String(), chiPath(path), handler)
}

// Start starts the HTTP server
func (ca *ChiAdapter) Start(addr string) error {
	return ca.lifecycle.start(addr, ca.router)
}

// Stop gracefully shuts down the server started by Start; a later Start
// returns http.ErrServerClosed
func (ca *ChiAdapter) Stop(ctx context.Context) error {
	return ca.lifecycle.stop(ctx)
}

// Name returns the adapter name
func (ca *ChiAdapter) Name() string {
	return "Chi"
}

// GetRouter returns the underlying chi router
func (ca *ChiAdapter) GetRouter() chi.Router {
	return ca.router
}

// ServeHTTP lets the adapter be mounted or tested as a plain http.Handler
func (ca *ChiAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ca.router.ServeHTTP(w, r)
}

// convertHandler converts archipelago.HandlerFunc to http.HandlerFunc
func (ca *ChiAdapter) convertHandler(handler archipelago.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestContext := &ChiRequestContext{
			request:  r,
			values:   map[string]any{},
			response: &ChiResponseWriter{writer: w, status: http.StatusOK},
		}
		if err := handler(requestContext); err != nil && !requestContext.response.written {
			code, body := errorBody(err)
			_ = requestContext.response.JSON(code, body)
		}
	}
}

// ChiRequestContext implements archipelago.RequestContext for chi
type ChiRequestContext struct {
	request  *http.Request
	values   map[string]any
	response *ChiResponseWriter
}

// Context returns the request context
func (crc *ChiRequestContext) Context() context.Context {
	return crc.request.Context()
}

// Method returns the HTTP method
func (crc *ChiRequestContext) Method() string {
	return crc.request.Method
}

// Path returns the request path
func (crc *ChiRequestContext) Path() string {
	return crc.request.URL.Path
}

// Param returns a path parameter; chi names the catch-all "*"
func (crc *ChiRequestContext) Param(name string) string {
	return chi.URLParam(crc.request, name)
}

// ParamNames returns parameter names
func (crc *ChiRequestContext) ParamNames() []string {
	rctx := chi.RouteContext(crc.request.Context())
	if rctx == nil {
		return nil
	}
	return append([]string(nil), rctx.URLParams.Keys...)
}

// QueryParam returns a query parameter
func (crc *ChiRequestContext) QueryParam(name string) string {
	return crc.request.URL.Query().Get(name)
}

// Header returns a request header
func (crc *ChiRequestContext) Header(key string) string {
	return crc.request.Header.Get(key)
}

// Get returns a request-scoped value
func (crc *ChiRequestContext) Get(key string) any {
	return crc.values[key]
}

// Set stores a request-scoped value
func (crc *ChiRequestContext) Set(key string, val any) {
	crc.values[key] = val
}

// Response returns the response writer
func (crc *ChiRequestContext) Response() archipelago.ResponseWriter {
	return crc.response
}

// ChiResponseWriter implements archipelago.ResponseWriter over http.ResponseWriter
type ChiResponseWriter struct {
	writer  http.ResponseWriter
	status  int
	written bool
}

// Status returns the response status code
func (crw *ChiResponseWriter) Status() int {
	return crw.status
}

// Header returns a response header
func (crw *ChiResponseWriter) Header(key string) string {
	return crw.writer.Header().Get(key)
}

// SetHeader sets a response header
func (crw *ChiResponseWriter) SetHeader(key, value string) {
	crw.writer.Header().Set(key, value)
}

// JSON writes a JSON response
func (crw *ChiResponseWriter) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	crw.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	crw.writeHeader(code)
	_, err = crw.writer.Write(body)
	return err
}

// String writes a string response
func (crw *ChiResponseWriter) String(code int, s string) error {
	crw.writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	crw.writeHeader(code)
	_, err := crw.writer.Write([]byte(s))
	return err
}

// NoContent writes the status without a body
func (crw *ChiResponseWriter) NoContent(code int) error {
	crw.writeHeader(code)
	return nil
}

// Written returns whether the response has been written
func (crw *ChiResponseWriter) Written() bool {
	return crw.written
}

func (crw *ChiResponseWriter) writeHeader(code int) {
	crw.status = code
	crw.written = true
	crw.writer.WriteHeader(code)
}
