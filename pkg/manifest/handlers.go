package manifest

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/toyz/archipelago/pkg/archipelago"
)

// Handlers maps the names used in manifests to handler functions
type Handlers struct {
	mu       sync.RWMutex
	handlers map[string]archipelago.HandlerFunc
}

// NewHandlers creates an empty handler registry
func NewHandlers() *Handlers {
	return &Handlers{handlers: make(map[string]archipelago.HandlerFunc)}
}

// Register adds a named handler
func (h *Handlers) Register(name string, handler archipelago.HandlerFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler '%s' cannot be nil", name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.handlers[name]; exists {
		return fmt.Errorf("handler '%s' is already registered", name)
	}
	h.handlers[name] = handler
	return nil
}

// MustRegister is like Register but panics on error
func (h *Handlers) MustRegister(name string, handler archipelago.HandlerFunc) {
	if err := h.Register(name, handler); err != nil {
		panic(err)
	}
}

// Lookup retrieves a handler by name
func (h *Handlers) Lookup(name string) (archipelago.HandlerFunc, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	handler, exists := h.handlers[name]
	return handler, exists
}

// Resolve returns the handlers for names, in order. Every unknown name is
// reported in a single error
func (h *Handlers) Resolve(names []string) ([]archipelago.HandlerFunc, error) {
	resolved := make([]archipelago.HandlerFunc, 0, len(names))
	var missing []string

	for _, name := range names {
		handler, ok := h.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		resolved = append(resolved, handler)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown handler(s): %s", strings.Join(missing, ", "))
	}
	return resolved, nil
}

// Names returns the registered names in sorted order
func (h *Handlers) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.handlers))
	for name := range h.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
