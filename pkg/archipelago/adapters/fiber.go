package adapters

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// FiberAdapter wraps a Fiber app to implement archipelago.Server
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter instance
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	return &FiberAdapter{app: app}
}

// NewDefaultFiberAdapter creates a new Fiber adapter with default middleware
func NewDefaultFiberAdapter() *FiberAdapter {
	adapter := NewFiberAdapter()

	adapter.app.Use(logger.New())
	adapter.app.Use(recover.New())

	return adapter
}

// fiberPath converts a pattern to Fiber path format
func fiberPath(path archipelago.Pattern) string {
	return path.Translate(func(name string) string { return ":" + name }, "*")
}

// RegisterRoute registers a route with the Fiber app
func (fa *FiberAdapter) RegisterRoute(method archipelago.Verb, path archipelago.Pattern, handlers ...archipelago.HandlerFunc) {
	handler := convertHandlerToFiber(archipelago.Chain(handlers...))
	if method == archipelago.VerbAll {
		fa.app.All(fiberPath(path), handler)
		return
	}
	fa.app.Add(method.String(), fiberPath(path), handler)
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// GetApp returns the underlying Fiber app
func (fa *FiberAdapter) GetApp() *fiber.App {
	return fa.app
}

// convertHandlerToFiber converts a handler to a Fiber handler
func convertHandlerToFiber(handler archipelago.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestContext := &FiberRequestContext{ctx: c}
		requestContext.response = &FiberResponse{ctx: c}

		err := handler(requestContext)
		if err == nil || requestContext.response.written {
			return err
		}
		code, body := errorBody(err)
		return c.Status(code).JSON(body)
	}
}

// FiberRequestContext wraps fiber.Ctx to implement archipelago.RequestContext
type FiberRequestContext struct {
	ctx      *fiber.Ctx
	response *FiberResponse
}

func (frc *FiberRequestContext) Context() context.Context {
	return frc.ctx.UserContext()
}

// Request data methods
func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

func (frc *FiberRequestContext) Path() string {
	return frc.ctx.Path()
}

// Parameter methods
func (frc *FiberRequestContext) Param(name string) string {
	return frc.ctx.Params(name)
}

func (frc *FiberRequestContext) ParamNames() []string {
	params := frc.ctx.Route().Params
	names := make([]string, 0, len(params))
	for _, name := range params {
		// Fiber numbers wildcards ("*1")
		if strings.HasPrefix(name, "*") {
			name = "*"
		}
		names = append(names, name)
	}
	return names
}

func (frc *FiberRequestContext) QueryParam(key string) string {
	return frc.ctx.Query(key)
}

func (frc *FiberRequestContext) Header(key string) string {
	return frc.ctx.Get(key)
}

// Context data
func (frc *FiberRequestContext) Get(key string) any {
	return frc.ctx.Locals(key)
}

func (frc *FiberRequestContext) Set(key string, val any) {
	frc.ctx.Locals(key, val)
}

func (frc *FiberRequestContext) Response() archipelago.ResponseWriter {
	return frc.response
}

// FiberResponse implements archipelago.ResponseWriter. fasthttp reports a
// status of 200 before anything is written, so writes are tracked here
type FiberResponse struct {
	ctx     *fiber.Ctx
	written bool
}

func (fr *FiberResponse) Status() int {
	return fr.ctx.Response().StatusCode()
}

func (fr *FiberResponse) Header(key string) string {
	return string(fr.ctx.Response().Header.Peek(key))
}

func (fr *FiberResponse) SetHeader(name, value string) {
	fr.ctx.Set(name, value)
}

func (fr *FiberResponse) JSON(code int, data any) error {
	fr.written = true
	return fr.ctx.Status(code).JSON(data)
}

func (fr *FiberResponse) String(code int, s string) error {
	fr.written = true
	return fr.ctx.Status(code).SendString(s)
}

func (fr *FiberResponse) NoContent(code int) error {
	fr.written = true
	return fr.ctx.SendStatus(code)
}

func (fr *FiberResponse) Written() bool {
	return fr.written
}
