// Package mcperrors defines domain-specific error types for the MCP layer.
// These errors carry more context than standard Go errors and map internal
// failures onto the JSON-RPC error codes that form the wire contract.
package mcperrors

// file: internal/mcp/mcperrors/errors.go

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorCode identifies an error category. Values double as the JSON-RPC
// error codes sent on the wire.
type ErrorCode int

// JSON-RPC standard codes plus the implementation-defined server range.
const (
	// ErrParseError indicates the input line was not valid JSON.
	ErrParseError ErrorCode = -32700
	// ErrInvalidRequest indicates a structurally invalid JSON-RPC request.
	ErrInvalidRequest ErrorCode = -32600
	// ErrMethodNotFound indicates an unknown method, tool, or prompt name.
	ErrMethodNotFound ErrorCode = -32601
	// ErrInvalidParams indicates bad parameters, including unknown resource URIs.
	ErrInvalidParams ErrorCode = -32602
	// ErrInternal indicates an uncaught handler fault.
	ErrInternal ErrorCode = -32603

	// ErrToolExecution is the application error for a domain-specific tool
	// failure, e.g. a filesystem error inside list_files.
	ErrToolExecution ErrorCode = -32000
	// ErrNotInitialized rejects non-initialize methods before the handshake
	// when the strict initialization gate is enabled.
	ErrNotInitialized ErrorCode = -32002
)

// BaseError is the common base for the MCP error types. It embeds the
// standard error interface and adds a code and key-value context.
type BaseError struct {
	// Code is the JSON-RPC error code this error maps to.
	Code ErrorCode
	// Message is the error message sent to the client verbatim.
	Message string
	// Cause is the underlying error, allowing error chain traversal.
	Cause error
	// Context contains additional key-value details for logging.
	Context map[string]any
}

// Error implements the standard Go error interface.
func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("MCPError (Code: %d): %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("MCPError (Code: %d): %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// As supports errors.As extraction of the embedded BaseError from any of the
// concrete error types defined below, which promote this method.
func (e *BaseError) As(target any) bool {
	if p, ok := target.(**BaseError); ok {
		*p = e
		return true
	}
	return false
}

// WithContext adds a key-value pair to the error's context map and returns
// the error for chaining.
func (e *BaseError) WithContext(key string, value any) *BaseError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ParseError represents a JSON syntax failure on an input line.
type ParseError struct {
	BaseError
}

// MethodNotFoundError represents an unknown method, tool, or prompt.
type MethodNotFoundError struct {
	BaseError
}

// InvalidParamsError represents invalid method parameters.
type InvalidParamsError struct {
	BaseError
}

// InternalError represents an uncaught handler fault.
type InternalError struct {
	BaseError
}

// ToolExecutionError represents a domain-specific tool failure.
type ToolExecutionError struct {
	BaseError
}

// NotInitializedError represents a request arriving before the initialize
// handshake while the strict gate is enabled.
type NotInitializedError struct {
	BaseError
}

func newBase(code ErrorCode, message string, cause error) BaseError {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return BaseError{Code: code, Message: message, Cause: wrapped}
}

// NewParseError creates a JSON parse error (maps to -32700).
func NewParseError(message string, cause error) error {
	return &ParseError{BaseError: newBase(ErrParseError, message, cause)}
}

// NewMethodNotFoundError creates a method-not-found error (maps to -32601).
func NewMethodNotFoundError(message string) error {
	return &MethodNotFoundError{BaseError: newBase(ErrMethodNotFound, message, nil)}
}

// NewInvalidParamsError creates an invalid-params error (maps to -32602).
func NewInvalidParamsError(message string, cause error) error {
	return &InvalidParamsError{BaseError: newBase(ErrInvalidParams, message, cause)}
}

// NewInternalError creates a generic internal server error (maps to -32603).
func NewInternalError(message string, cause error) error {
	return &InternalError{BaseError: newBase(ErrInternal, message, cause)}
}

// NewToolExecutionError creates an application error for a failed tool run
// (maps to -32000). The message carries the failure's own description.
func NewToolExecutionError(message string, cause error) error {
	return &ToolExecutionError{BaseError: newBase(ErrToolExecution, message, cause)}
}

// NewNotInitializedError creates an error for requests arriving before
// initialize while the strict gate is on (maps to -32002).
func NewNotInitializedError(method string) error {
	err := &NotInitializedError{BaseError: newBase(ErrNotInitialized, "server not initialized", nil)}
	err.WithContext("method", method)
	return err
}

// MapToJSONRPC translates any error into JSON-RPC error components. Errors
// built from this package keep their code and message; anything else becomes
// an internal error whose message carries the fault's description, matching
// the propagation policy of the dispatcher.
func MapToJSONRPC(err error) (code int, message string) {
	var baseErr *BaseError
	if errors.As(err, &baseErr) {
		return int(baseErr.Code), baseErr.Message
	}
	return int(ErrInternal), fmt.Sprintf("Internal error: %v", err)
}
