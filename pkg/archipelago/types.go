package archipelago

import (
	"context"
	"fmt"
	"strings"
)

// Verb is an HTTP method a route module can bind handlers to
type Verb string

const (
	VerbGet     Verb = "GET"
	VerbPost    Verb = "POST"
	VerbPut     Verb = "PUT"
	VerbDelete  Verb = "DELETE"
	VerbPatch   Verb = "PATCH"
	VerbOptions Verb = "OPTIONS"
	VerbHead    Verb = "HEAD"
	// VerbAll binds the handlers for every method
	VerbAll Verb = "ALL"
)

// Verbs lists every supported verb in declaration order
var Verbs = []Verb{VerbGet, VerbPost, VerbPut, VerbDelete, VerbPatch, VerbOptions, VerbHead, VerbAll}

// Valid reports whether v belongs to the supported verb set
func (v Verb) Valid() bool {
	for _, known := range Verbs {
		if v == known {
			return true
		}
	}
	return false
}

// String returns the verb as an upper-case method name
func (v Verb) String() string {
	return string(v)
}

// ParseVerb converts a method name, in any case, into a Verb
func ParseVerb(method string) (Verb, error) {
	v := Verb(strings.ToUpper(strings.TrimSpace(method)))
	if !v.Valid() {
		return "", fmt.Errorf("unsupported method %q", method)
	}
	return v, nil
}

// RouteConfig binds an ordered handler sequence to one verb
type RouteConfig struct {
	Method   Verb          `validate:"required,oneof=GET POST PUT DELETE PATCH OPTIONS HEAD ALL"`
	Handlers []HandlerFunc `validate:"min=1,dive,required"`
}

// Config is the configuration a route module exports
type Config struct {
	// Ignore keeps the module discoverable but prevents its handlers from being bound
	Ignore bool

	// Routes are bound in declaration order
	Routes []RouteConfig `validate:"dive"`

	// Meta carries free-form module data through to the loading hook
	Meta map[string]any
}

// HandlerCount returns the total number of handlers across all routes
func (c *Config) HandlerCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, route := range c.Routes {
		count += len(route.Handlers)
	}
	return count
}

// Methods returns the distinct verbs used by the routes, in declaration order
func (c *Config) Methods() []Verb {
	if c == nil {
		return nil
	}
	seen := make(map[Verb]bool, len(c.Routes))
	var methods []Verb
	for _, route := range c.Routes {
		if seen[route.Method] {
			continue
		}
		seen[route.Method] = true
		methods = append(methods, route.Method)
	}
	return methods
}

func (c *Config) clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{Ignore: c.Ignore}
	if c.Routes != nil {
		out.Routes = make([]RouteConfig, len(c.Routes))
		for i, route := range c.Routes {
			out.Routes[i] = RouteConfig{
				Method:   route.Method,
				Handlers: append([]HandlerFunc(nil), route.Handlers...),
			}
		}
	}
	if c.Meta != nil {
		out.Meta = make(map[string]any, len(c.Meta))
		for k, v := range c.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

// RouteDescriptor ties one discovered file to its route pattern and configuration
type RouteDescriptor struct {
	// AbsolutePath is the resolved filesystem path of the module
	AbsolutePath string

	// RelativePath is the path below the scan root, slash separated with a leading slash
	RelativePath string

	// Route is the compiled URL pattern (e.g. "/admin/orders/:id")
	Route string

	// Config is nil until loaded, and stays nil when the module exports none
	Config *Config
}

// HasRoutes reports whether the descriptor carries at least one route
func (d *RouteDescriptor) HasRoutes() bool {
	return d.Config != nil && len(d.Config.Routes) > 0
}

// Ignored reports whether the module asked for its handlers to be skipped
func (d *RouteDescriptor) Ignored() bool {
	return d.Config != nil && d.Config.Ignore
}

// Snapshot returns a copy whose config can be inspected without affecting registration
func (d *RouteDescriptor) Snapshot() RouteDescriptor {
	return RouteDescriptor{
		AbsolutePath: d.AbsolutePath,
		RelativePath: d.RelativePath,
		Route:        d.Route,
		Config:       d.Config.clone(),
	}
}

// OnRouteLoadingHook observes each descriptor before its routes are bound
// Returning an error aborts the run
type OnRouteLoadingHook func(ctx context.Context, descriptor RouteDescriptor) error

// Resolver turns a discovered module into its exported configuration
// A nil config with a nil error means the module exports none
type Resolver interface {
	Resolve(ctx context.Context, descriptor RouteDescriptor) (*Config, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, descriptor RouteDescriptor) (*Config, error)

// Resolve calls f
func (f ResolverFunc) Resolve(ctx context.Context, descriptor RouteDescriptor) (*Config, error) {
	return f(ctx, descriptor)
}
