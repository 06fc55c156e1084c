package archipelago

import "sync"

// RouteInfo describes one binding made on an Application
type RouteInfo struct {
	Method   Verb
	Path     Pattern
	Handlers []HandlerFunc
}

// RouteRecorder is an Application that records bindings in order instead
// of serving them. It backs dry runs and tests
type RouteRecorder struct {
	mu     sync.Mutex
	routes []RouteInfo
}

// NewRouteRecorder creates an empty recorder
func NewRouteRecorder() *RouteRecorder {
	return &RouteRecorder{}
}

// RegisterRoute implements Application
func (r *RouteRecorder) RegisterRoute(method Verb, path Pattern, handlers ...HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, RouteInfo{
		Method:   method,
		Path:     path,
		Handlers: append([]HandlerFunc(nil), handlers...),
	})
}

// Routes returns a copy of the recorded bindings
func (r *RouteRecorder) Routes() []RouteInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RouteInfo(nil), r.routes...)
}

// RoutesByMethod returns the recorded bindings for one verb
func (r *RouteRecorder) RoutesByMethod(method Verb) []RouteInfo {
	var filtered []RouteInfo
	for _, route := range r.Routes() {
		if route.Method == method {
			filtered = append(filtered, route)
		}
	}
	return filtered
}
