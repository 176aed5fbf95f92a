package permission

import (
	"context"
	"sync"

	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure Router implements the interface.
var _ driven.PermissionRequester = (*Router)(nil)

// Router forwards requests to whichever requester is current. Surfaces
// that take over the terminal route requests to themselves while running.
type Router struct {
	mu      sync.RWMutex
	current driven.PermissionRequester
}

// NewRouter creates a router that starts with fallback.
func NewRouter(fallback driven.PermissionRequester) *Router {
	return &Router{current: fallback}
}

// Route makes requester current until the returned restore func is called.
func (r *Router) Route(requester driven.PermissionRequester) (restore func()) {
	r.mu.Lock()
	prev := r.current
	r.current = requester
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		r.current = prev
		r.mu.Unlock()
	}
}

// RequestStoragePermission implements driven.PermissionRequester.
func (r *Router) RequestStoragePermission(ctx context.Context) (bool, error) {
	r.mu.RLock()
	current := r.current
	r.mu.RUnlock()

	if current == nil {
		return false, nil
	}
	return current.RequestStoragePermission(ctx)
}
