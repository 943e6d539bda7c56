// Package transport defines interfaces and implementations for carrying
// newline-delimited JSON-RPC messages between an MCP server and its peer.
// This file defines the structured error types used by the transport layer.
package transport

// file: internal/transport/errors.go

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorCode defines specific numeric codes for transport-layer errors.
// These are internal categorizations, distinct from JSON-RPC error codes.
type ErrorCode int

// Defined error codes for the transport layer.
const (
	// ErrGeneric represents a general or unspecified transport error.
	ErrGeneric ErrorCode = iota + 1000
	// ErrMessageTooLarge signifies a message exceeded MaxMessageSize.
	ErrMessageTooLarge
	// ErrTransportClosed indicates an operation was attempted on a closed transport,
	// or that the peer closed the stream.
	ErrTransportClosed
	// ErrReadTimeout signifies the context expired during a read operation.
	ErrReadTimeout
	// ErrWriteTimeout signifies the context expired during a write operation.
	ErrWriteTimeout
)

// Error represents a transport-level error with a code, message, and optional cause.
type Error struct {
	// Code provides a specific numeric identifier for the error condition.
	Code ErrorCode
	// Message is a human-readable description of the error.
	Message string
	// Cause holds the underlying error that triggered this transport error, if any.
	Cause error
}

// Error implements the standard Go error interface.
func (e *Error) Error() string {
	base := fmt.Sprintf("TransportError [%d] %s", e.Code, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches transport errors by code so callers can compare with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a transport error, attaching a stack trace to the cause.
func NewError(code ErrorCode, message string, cause error) *Error {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return &Error{Code: code, Message: message, Cause: wrapped}
}

// NewClosedError creates an error for operations on a closed transport.
func NewClosedError(op string) *Error {
	return NewError(ErrTransportClosed, fmt.Sprintf("transport closed during %s", op), nil)
}

// NewMessageSizeError creates an error for messages exceeding MaxMessageSize.
func NewMessageSizeError(size, maxSize int) *Error {
	return NewError(ErrMessageTooLarge,
		fmt.Sprintf("message size %d exceeds maximum allowed size %d", size, maxSize), nil)
}

// NewTimeoutError creates an error for a context expiring mid-operation.
func NewTimeoutError(op string, cause error) *Error {
	code := ErrReadTimeout
	if op == "write" {
		code = ErrWriteTimeout
	}
	return NewError(code, fmt.Sprintf("context ended during %s", op), cause)
}

// IsClosedError reports whether err indicates a closed transport or stream.
func IsClosedError(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrTransportClosed
}
