package adapters

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// EchoAdapter implements archipelago.Server for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with default Echo instance
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	return &EchoAdapter{engine: e}
}

// echoPath converts a pattern to Echo path format
func echoPath(path archipelago.Pattern) string {
	return path.Translate(func(name string) string { return ":" + name }, "*")
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method archipelago.Verb, path archipelago.Pattern, handlers ...archipelago.HandlerFunc) {
	handler := ea.convertHandler(archipelago.Chain(handlers...))
	if method == archipelago.VerbAll {
		ea.engine.Any(echoPath(path), handler)
		return
	}
	ea.engine.Add(method.String(), echoPath(path), handler)
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	return ea.engine.Start(addr)
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// GetEngine returns the underlying Echo instance
func (ea *EchoAdapter) GetEngine() *echo.Echo {
	return ea.engine
}

// convertHandler converts archipelago.HandlerFunc to echo.HandlerFunc
func (ea *EchoAdapter) convertHandler(handler archipelago.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := handler(&EchoRequestContext{context: c})
		if err == nil || c.Response().Committed {
			return err
		}
		code, body := errorBody(err)
		return c.JSON(code, body)
	}
}

// EchoRequestContext implements archipelago.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

// Context returns the request context
func (erc *EchoRequestContext) Context() context.Context {
	return erc.context.Request().Context()
}

// Method returns the HTTP method
func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

// Path returns the request path
func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

// Param returns path parameter by name
func (erc *EchoRequestContext) Param(key string) string {
	return erc.context.Param(key)
}

// ParamNames returns path parameter names
func (erc *EchoRequestContext) ParamNames() []string {
	return erc.context.ParamNames()
}

// QueryParam returns query parameter by name
func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

// Header returns a request header
func (erc *EchoRequestContext) Header(key string) string {
	return erc.context.Request().Header.Get(key)
}

// Get retrieves data from context
func (erc *EchoRequestContext) Get(key string) any {
	return erc.context.Get(key)
}

// Set stores data in context
func (erc *EchoRequestContext) Set(key string, val any) {
	erc.context.Set(key, val)
}

// Response returns the response writer
func (erc *EchoRequestContext) Response() archipelago.ResponseWriter {
	return &EchoResponseWriter{context: erc.context}
}

// EchoResponseWriter implements archipelago.ResponseWriter for Echo
type EchoResponseWriter struct {
	context echo.Context
}

// Status returns the response status code
func (erw *EchoResponseWriter) Status() int {
	return erw.context.Response().Status
}

// Header returns a response header
func (erw *EchoResponseWriter) Header(key string) string {
	return erw.context.Response().Header().Get(key)
}

// SetHeader sets a response header
func (erw *EchoResponseWriter) SetHeader(key, value string) {
	erw.context.Response().Header().Set(key, value)
}

// JSON writes a JSON response
func (erw *EchoResponseWriter) JSON(code int, v any) error {
	return erw.context.JSON(code, v)
}

// String writes a string response
func (erw *EchoResponseWriter) String(code int, s string) error {
	return erw.context.String(code, s)
}

// NoContent writes the status without a body
func (erw *EchoResponseWriter) NoContent(code int) error {
	return erw.context.NoContent(code)
}

// Written returns whether the response has been committed
func (erw *EchoResponseWriter) Written() bool {
	return erw.context.Response().Committed
}
