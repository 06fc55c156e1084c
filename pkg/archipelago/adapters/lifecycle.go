package adapters

import (
	"context"
	"net/http"
	"sync"
)

// httpLifecycle runs an http.Server for routers that have no lifecycle of
// their own. Once stopped it refuses to start
type httpLifecycle struct {
	mu      sync.Mutex
	server  *http.Server
	stopped bool
}

func (l *httpLifecycle) start(addr string, handler http.Handler) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return http.ErrServerClosed
	}
	l.server = &http.Server{Addr: addr, Handler: handler}
	server := l.server
	l.mu.Unlock()
	return server.ListenAndServe()
}

func (l *httpLifecycle) stop(ctx context.Context) error {
	l.mu.Lock()
	l.stopped = true
	server := l.server
	l.mu.Unlock()
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
