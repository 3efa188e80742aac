package listview

import "sync"

// Registry keeps one View per console session.
type Registry[T any] struct {
	newView func(sessionID string) *View[T]

	mu    sync.Mutex
	views map[string]*View[T]
}

// NewRegistry returns a registry that builds views with newView.
func NewRegistry[T any](newView func(sessionID string) *View[T]) *Registry[T] {
	return &Registry[T]{newView: newView, views: make(map[string]*View[T])}
}

// For returns the view of sessionID, creating it on first use.
func (r *Registry[T]) For(sessionID string) *View[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	view, ok := r.views[sessionID]
	if !ok {
		view = r.newView(sessionID)
		r.views[sessionID] = view
	}
	return view
}

// Drop forgets the view of sessionID.
func (r *Registry[T]) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, sessionID)
}

// Len reports how many sessions hold a view.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
