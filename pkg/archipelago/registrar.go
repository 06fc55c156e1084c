package archipelago

import (
	"context"
	"fmt"
	"log/slog"
)

// Register walks the registry in insertion order, calls the hook for every
// descriptor and binds the routes of every non-ignored descriptor to app
func Register(ctx context.Context, app Application, registry *Registry, hook OnRouteLoadingHook, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	for _, descriptor := range registry.Descriptors() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if hook != nil {
			if err := hook(ctx, descriptor.Snapshot()); err != nil {
				return newError(HookErrorCode, descriptor.RelativePath, "route loading hook failed", err)
			}
		}

		if !descriptor.HasRoutes() || descriptor.Ignored() {
			continue
		}

		for _, route := range descriptor.Config.Routes {
			logger.Info("registering route", "method", route.Method.String(), "route", descriptor.Route)
			if err := bind(app, route, descriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

// bind recovers router panics, such as conflicting wildcards, into errors
func bind(app Application, route RouteConfig, descriptor *RouteDescriptor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(RegistrationErrorCode, descriptor.RelativePath,
				fmt.Sprintf("failed to register %s %s", route.Method, descriptor.Route),
				fmt.Errorf("%v", r))
		}
	}()

	app.RegisterRoute(route.Method, Pattern(descriptor.Route), route.Handlers...)
	return nil
}
