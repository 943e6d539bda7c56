// Package router provides the dispatch table mapping MCP method names to
// their handler functions.
package router

// file: internal/mcp/router/router.go

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
)

// Handler defines the function signature for handling an MCP request.
// It receives the context and raw parameters, returning raw result bytes or
// an error. Every dispatched request produces exactly one of the two.
type Handler func(ctx context.Context, params json.RawMessage) (json.RawMessage, error)

// Router defines the interface for an MCP method router.
type Router interface {
	// AddRoute registers a handler for a method name.
	AddRoute(method string, handler Handler) error
	// Route dispatches to the handler registered for method. An unknown
	// method yields a method-not-found error carrying the method name.
	Route(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error)
	// Methods returns the registered method names in sorted order.
	Methods() []string
}

// router implements the Router interface over a fixed dispatch map.
// Routes are registered once at construction time; the read lock exists only
// to keep the type safe if that assumption ever changes.
type router struct {
	routes map[string]Handler
	mu     sync.RWMutex
	logger logging.Logger
}

// NewRouter creates an empty Router instance.
func NewRouter(logger logging.Logger) Router {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &router{
		routes: make(map[string]Handler),
		logger: logger.WithField("component", "mcp_router"),
	}
}

// AddRoute registers a new route. Registering an empty method name, a nil
// handler, or a duplicate method is an error.
func (r *router) AddRoute(method string, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if method == "" {
		return fmt.Errorf("cannot register route with empty method name")
	}
	if handler == nil {
		return fmt.Errorf("route for method '%s' must have a handler", method)
	}
	if _, exists := r.routes[method]; exists {
		r.logger.Warn("Attempted to register duplicate route.", "method", method)
		return fmt.Errorf("route for method '%s' already registered", method)
	}

	r.routes[method] = handler
	r.logger.Debug("Registered route.", "method", method)
	return nil
}

// Route looks up the handler for the given method and executes it.
func (r *router) Route(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	handler, exists := r.routes[method]
	r.mu.RUnlock()

	if !exists {
		r.logger.Warn("Method not found in router.", "method", method)
		return nil, mcperrors.NewMethodNotFoundError(fmt.Sprintf("Method '%s' not found", method))
	}

	r.logger.Debug("Routing to handler.", "method", method)
	return handler(ctx, params)
}

// Methods returns a sorted slice of registered method names.
func (r *router) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	methods := make([]string, 0, len(r.routes))
	for method := range r.routes {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}
