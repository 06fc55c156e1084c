package archipelago

import (
	"context"
	"strings"
	"sync"
)

// StaticResolver serves configs declared in code, keyed by module path
// relative to the scan root ("/admin/orders/index.go"). Modules without an
// entry export no config
type StaticResolver struct {
	mu      sync.RWMutex
	configs map[string]*Config
}

// NewStaticResolver creates a resolver seeded with configs
func NewStaticResolver(configs map[string]*Config) *StaticResolver {
	r := &StaticResolver{configs: make(map[string]*Config, len(configs))}
	for path, config := range configs {
		r.configs[normalizeModulePath(path)] = config
	}
	return r
}

// Set declares the config exported by the module at relPath
func (r *StaticResolver) Set(relPath string, config *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[normalizeModulePath(relPath)] = config
}

// Resolve implements Resolver
func (r *StaticResolver) Resolve(ctx context.Context, descriptor RouteDescriptor) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configs[normalizeModulePath(descriptor.RelativePath)], nil
}

func normalizeModulePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
