package archipelago

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadOptions controls how module configurations are resolved
type LoadOptions struct {
	// Strict fails the load when any module exports no config
	Strict bool

	// Concurrency bounds the number of modules resolved at once; zero means unbounded
	Concurrency int

	Logger *slog.Logger
}

// LoadAll resolves the config of every descriptor in the registry
// concurrently and attaches it in place. It returns once every descriptor
// has been attempted; the first failure is returned
func LoadAll(ctx context.Context, registry *Registry, resolver Resolver, opts LoadOptions) error {
	if resolver == nil {
		return newError(ConfigurationErrorCode, "", "a resolver is required", nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for _, descriptor := range registry.Descriptors() {
		g.Go(func() error {
			return load(gctx, descriptor, resolver, opts.Strict, logger)
		})
	}

	return g.Wait()
}

func load(ctx context.Context, descriptor *RouteDescriptor, resolver Resolver, strict bool, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config, err := resolver.Resolve(ctx, *descriptor)
	if err != nil {
		return newError(LoadErrorCode, descriptor.RelativePath, "failed to load module", err)
	}

	if config == nil {
		if strict {
			return newError(MissingConfigErrorCode, descriptor.RelativePath, "strict mode requires every module to export a config", ErrMissingConfig)
		}
		logger.Info("skipping loading handlers, no config found", "path", descriptor.RelativePath)
		descriptor.Config = nil
		return nil
	}

	if err := configValidator.Struct(config); err != nil {
		return newError(ValidationErrorCode, descriptor.RelativePath, "invalid config", err)
	}

	descriptor.Config = config

	if config.Ignore {
		logger.Info("skipping handlers of ignored module", "path", descriptor.RelativePath)
		return nil
	}

	if count := config.HandlerCount(); count > 0 {
		verbs := make([]string, 0, len(config.Routes))
		for _, verb := range config.Methods() {
			verbs = append(verbs, verb.String())
		}
		logger.Info("loading handlers",
			"path", descriptor.RelativePath,
			"handlers", count,
			"verbs", strings.Join(verbs, ", "),
		)
	}
	return nil
}
