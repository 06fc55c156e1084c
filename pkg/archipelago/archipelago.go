package archipelago

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Options configures a discovery run
type Options struct {
	// RootDir is the directory scanned for route modules
	RootDir string `validate:"required"`

	// OnRouteLoading, when set, observes every discovered module before binding
	OnRouteLoading OnRouteLoadingHook

	// Strict requires every module to export a config
	Strict bool

	// Resolver loads the config a module exports
	Resolver Resolver `validate:"required"`

	// Concurrency bounds concurrent module loads and directory reads; zero
	// leaves loads unbounded and reads at DefaultWalkConcurrency
	Concurrency int `validate:"min=0"`

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

func (o Options) validate() error {
	if err := configValidator.Struct(o); err != nil {
		return newError(ConfigurationErrorCode, o.RootDir, "invalid options", err)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Discover walks RootDir and loads every module's config without binding anything
func Discover(ctx context.Context, opts Options) (*Registry, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return discover(ctx, opts, opts.logger())
}

func discover(ctx context.Context, opts Options, logger *slog.Logger) (*Registry, error) {
	registry := NewRegistry()

	if err := walk(ctx, opts.RootDir, registry, logger, opts.Concurrency); err != nil {
		return nil, err
	}

	err := LoadAll(ctx, registry, opts.Resolver, LoadOptions{
		Strict:      opts.Strict,
		Concurrency: opts.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	return registry, nil
}

// Run discovers the route modules below opts.RootDir and binds them to app
// The same app is returned so the call can be chained into server startup
func Run[A Application](ctx context.Context, app A, opts Options) (A, error) {
	if err := opts.validate(); err != nil {
		return app, err
	}

	logger := opts.logger().With("run", uuid.NewString())
	start := time.Now()
	logger.Info("loading routes", "root", opts.RootDir)

	registry, err := discover(ctx, opts, logger)
	if err != nil {
		return app, err
	}

	if err := Register(ctx, app, registry, opts.OnRouteLoading, logger); err != nil {
		return app, err
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	logger.Info("routes loaded", "modules", registry.Len(), "elapsed", fmt.Sprintf("%.3f ms", elapsed))
	return app, nil
}
