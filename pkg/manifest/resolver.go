// Package manifest resolves route modules declared as YAML, JSON or .route
// files, binding the handler names they reference through a Handlers registry
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// Extensions lists the module file extensions the Resolver understands
var Extensions = []string{".yaml", ".yml", ".json", ".route"}

var specValidator = validator.New(validator.WithRequiredStructEnabled())

// Resolver loads module configs from manifest files on disk and binds the
// handler names they reference through a Handlers registry
type Resolver struct {
	handlers *Handlers
}

// NewResolver creates a resolver backed by handlers
func NewResolver(handlers *Handlers) *Resolver {
	if handlers == nil {
		handlers = NewHandlers()
	}
	return &Resolver{handlers: handlers}
}

// Resolve implements archipelago.Resolver
func (r *Resolver) Resolve(ctx context.Context, descriptor archipelago.RouteDescriptor) (*archipelago.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec, err := r.read(descriptor.AbsolutePath)
	if err != nil || spec == nil {
		return nil, err
	}
	return r.Build(spec)
}

func (r *Resolver) read(path string) (*ModuleSpec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supports(path) {
		return nil, fmt.Errorf("unsupported module extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if ext == ".route" {
		return parseRouteFile(filepath.Base(path), data)
	}
	// JSON is read by the YAML decoder as a subset
	return decodeDocument(data)
}

// Build turns a declarative spec into a config, resolving verbs and handler names
func (r *Resolver) Build(spec *ModuleSpec) (*archipelago.Config, error) {
	if err := specValidator.Struct(spec); err != nil {
		return nil, fmt.Errorf("invalid module spec: %w", err)
	}

	config := &archipelago.Config{Ignore: spec.Ignore, Meta: spec.Meta}
	for i, route := range spec.Routes {
		method, err := archipelago.ParseVerb(route.Method)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		handlers, err := r.handlers.Resolve(route.Handlers)
		if err != nil {
			return nil, fmt.Errorf("route %d (%s): %w", i, method, err)
		}

		config.Routes = append(config.Routes, archipelago.RouteConfig{Method: method, Handlers: handlers})
	}
	return config, nil
}

// Supports reports whether path has a manifest extension
func Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}
