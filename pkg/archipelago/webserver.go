package archipelago

import (
	"context"
	"errors"
	"net/http"
)

// Application is the host that discovered routes are bound to
type Application interface {
	// RegisterRoute binds the ordered handlers to method and path
	RegisterRoute(method Verb, path Pattern, handlers ...HandlerFunc)
}

// Server is an Application that can also be started and stopped
type Server interface {
	Application

	// Server lifecycle
	Start(addr string) error
	Stop(ctx context.Context) error

	// Server information
	Name() string
}

// RequestContext provides a framework-agnostic view of one request
type RequestContext interface {
	// Context returns the request's context
	Context() context.Context

	// Request data
	Method() string
	Path() string

	// Parameters; the catch-all remainder is available as Param("*")
	Param(key string) string
	ParamNames() []string

	// Query parameters and headers
	QueryParam(key string) string
	Header(key string) string

	// Request-scoped values shared by the handler chain
	Get(key string) any
	Set(key string, val any)

	Response() ResponseWriter
}

// ResponseWriter provides response writing capabilities
type ResponseWriter interface {
	// Status
	Status() int

	// Headers
	Header(key string) string
	SetHeader(key, value string)

	// Content
	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error

	// Written reports whether a response has been sent
	Written() bool
}

// HandlerFunc defines the signature for route handlers
type HandlerFunc func(RequestContext) error

// Chain runs handlers in order. It stops after the first handler that
// returns an error or writes the response
func Chain(handlers ...HandlerFunc) HandlerFunc {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return func(ctx RequestContext) error {
		for _, handler := range handlers {
			if err := handler(ctx); err != nil {
				return err
			}
			if ctx.Response().Written() {
				return nil
			}
		}
		return nil
	}
}

// HTTPError represents an HTTP error with status code and message
type HTTPError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error makes HTTPError implement the error interface
func (he *HTTPError) Error() string {
	if he.Internal != nil {
		return he.Internal.Error()
	}
	return he.Message
}

// Unwrap returns the internal error
func (he *HTTPError) Unwrap() error {
	return he.Internal
}

// NewHTTPError creates a new HTTPError; the message defaults to the status text
func NewHTTPError(code int, message ...string) *HTTPError {
	he := &HTTPError{Code: code, Message: http.StatusText(code)}
	if len(message) > 0 {
		he.Message = message[0]
	}
	return he
}

// ErrorStatus maps a handler error to a status code and client-facing message
func ErrorStatus(err error) (int, string) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code, he.Message
	}
	return http.StatusInternalServerError, err.Error()
}
