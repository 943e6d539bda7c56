// Package mcptypes defines shared types and interfaces for the MCP server,
// catalog, and middleware components.
package mcptypes

// file: internal/mcptypes/interfaces.go

import (
	"context"
)

// MessageHandler is a function type for handling MCP messages.
// It processes a message (as JSON bytes) and returns a response (as JSON bytes)
// or an error if processing fails.
type MessageHandler func(ctx context.Context, message []byte) ([]byte, error)

// MiddlewareFunc is a function that wraps a MessageHandler with additional
// functionality such as panic recovery or request logging.
type MiddlewareFunc func(handler MessageHandler) MessageHandler

// Chain represents a middleware chain that can be built and executed.
type Chain interface {
	// Use adds a middleware function to the chain.
	Use(middleware MiddlewareFunc) Chain

	// Handler returns the final composed handler function.
	Handler() MessageHandler
}
