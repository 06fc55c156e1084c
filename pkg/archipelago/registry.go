package archipelago

import (
	"fmt"
	"sync"
)

// Registry holds the descriptors discovered by one run, keyed by absolute
// path and iterated in insertion order
type Registry struct {
	mu     sync.RWMutex
	order  []*RouteDescriptor
	byPath map[string]*RouteDescriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byPath: make(map[string]*RouteDescriptor),
	}
}

// Add inserts a descriptor; each absolute path may be added once
func (r *Registry) Add(descriptor *RouteDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPath[descriptor.AbsolutePath]; exists {
		return fmt.Errorf("descriptor for %s is already registered", descriptor.AbsolutePath)
	}

	r.byPath[descriptor.AbsolutePath] = descriptor
	r.order = append(r.order, descriptor)
	return nil
}

// Get retrieves the descriptor for an absolute path
func (r *Registry) Get(absolutePath string) (*RouteDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, exists := r.byPath[absolutePath]
	return descriptor, exists
}

// Descriptors returns the descriptors in insertion order
func (r *Registry) Descriptors() []*RouteDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*RouteDescriptor(nil), r.order...)
}

// Len returns the number of descriptors
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
