package adapters

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// ginWildcard is the name gin requires for the catch-all segment
const ginWildcard = "path"

// GinAdapter implements archipelago.Server for the Gin framework
type GinAdapter struct {
	engine *gin.Engine

	lifecycle httpLifecycle
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g}
}

// NewDefaultGinAdapter creates a new Gin adapter with default Gin instance
func NewDefaultGinAdapter() *GinAdapter {
	return &GinAdapter{engine: gin.Default()}
}

// ginPath converts a pattern to Gin path format
func ginPath(path archipelago.Pattern) string {
	return path.Translate(func(name string) string { return ":" + name }, "*"+ginWildcard)
}

// RegisterRoute registers a route with the Gin engine
func (ga *GinAdapter) RegisterRoute(method archipelago.Verb, path archipelago.Pattern, handlers ...archipelago.HandlerFunc) {
	handler := ga.convertHandler(archipelago.Chain(handlers...))
	if method == archipelago.VerbAll {
		ga.engine.Any(ginPath(path), handler)
		return
	}
	ga.engine.Handle(method.String(), ginPath(path), handler)
}

// Start starts the Gin server
func (ga *GinAdapter) Start(addr string) error {
	return ga.lifecycle.start(addr, ga.engine)
}

// Stop gracefully shuts down the server started by Start; a later Start
// returns http.ErrServerClosed
func (ga *GinAdapter) Stop(ctx context.Context) error {
	return ga.lifecycle.stop(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// GetEngine returns the underlying Gin engine
func (ga *GinAdapter) GetEngine() *gin.Engine {
	return ga.engine
}

// convertHandler converts archipelago.HandlerFunc to gin.HandlerFunc
func (ga *GinAdapter) convertHandler(handler archipelago.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestContext := &GinRequestContext{ctx: c}
		if err := handler(requestContext); err != nil {
			_ = c.Error(err)
			if !c.Writer.Written() {
				code, body := errorBody(err)
				c.AbortWithStatusJSON(code, body)
			}
		}
	}
}

// GinRequestContext implements archipelago.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

// Context returns the request context
func (grc *GinRequestContext) Context() context.Context {
	return grc.ctx.Request.Context()
}

// Method returns the HTTP method
func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

// Path returns the request path
func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

// Param returns a path parameter
func (grc *GinRequestContext) Param(name string) string {
	if name == "*" {
		// Gin keeps the leading slash on catch-all values
		return strings.TrimPrefix(grc.ctx.Param(ginWildcard), "/")
	}
	return grc.ctx.Param(name)
}

// ParamNames returns parameter names
func (grc *GinRequestContext) ParamNames() []string {
	names := make([]string, 0, len(grc.ctx.Params))
	for _, param := range grc.ctx.Params {
		if strings.HasSuffix(grc.ctx.FullPath(), "*"+param.Key) {
			names = append(names, "*")
			continue
		}
		names = append(names, param.Key)
	}
	return names
}

// QueryParam returns a query parameter
func (grc *GinRequestContext) QueryParam(name string) string {
	return grc.ctx.Query(name)
}

// Header returns a request header
func (grc *GinRequestContext) Header(key string) string {
	return grc.ctx.GetHeader(key)
}

// Get returns a value from context
func (grc *GinRequestContext) Get(key string) any {
	value, _ := grc.ctx.Get(key)
	return value
}

// Set sets a value in context
func (grc *GinRequestContext) Set(key string, val any) {
	grc.ctx.Set(key, val)
}

// Response returns the response writer
func (grc *GinRequestContext) Response() archipelago.ResponseWriter {
	return &GinResponseWriter{ctx: grc.ctx}
}

// GinResponseWriter implements archipelago.ResponseWriter for Gin
type GinResponseWriter struct {
	ctx *gin.Context
}

// Status returns the response status code
func (grw *GinResponseWriter) Status() int {
	return grw.ctx.Writer.Status()
}

// Header returns a response header
func (grw *GinResponseWriter) Header(key string) string {
	return grw.ctx.Writer.Header().Get(key)
}

// SetHeader sets a response header
func (grw *GinResponseWriter) SetHeader(key, value string) {
	grw.ctx.Header(key, value)
}

// JSON writes a JSON response
func (grw *GinResponseWriter) JSON(code int, v any) error {
	grw.ctx.JSON(code, v)
	return nil
}

// String writes a string response
func (grw *GinResponseWriter) String(code int, s string) error {
	grw.ctx.String(code, s)
	return nil
}

// NoContent writes the status without a body
func (grw *GinResponseWriter) NoContent(code int) error {
	grw.ctx.Status(code)
	grw.ctx.Writer.WriteHeaderNow()
	return nil
}

// Written returns whether the response has been written
func (grw *GinResponseWriter) Written() bool {
	return grw.ctx.Writer.Written()
}
