// file: internal/mcp/router/router_test.go
package router

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoParamsHandler(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	return params, nil
}

// TestRouter_AddRoute_RejectsInvalidRegistrations verifies registration guards.
func TestRouter_AddRoute_RejectsInvalidRegistrations(t *testing.T) {
	r := NewRouter(logging.GetNoopLogger())

	assert.Error(t, r.AddRoute("", echoParamsHandler), "Empty method name should be rejected.")
	assert.Error(t, r.AddRoute("tools/list", nil), "Nil handler should be rejected.")

	require.NoError(t, r.AddRoute("tools/list", echoParamsHandler))
	assert.Error(t, r.AddRoute("tools/list", echoParamsHandler), "Duplicate method should be rejected.")
}

// TestRouter_Route_DispatchesToRegisteredHandler verifies the happy path.
func TestRouter_Route_DispatchesToRegisteredHandler(t *testing.T) {
	r := NewRouter(logging.GetNoopLogger())
	require.NoError(t, r.AddRoute("tools/call", echoParamsHandler))

	result, err := r.Route(context.Background(), "tools/call", json.RawMessage(`{"name":"echo"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"echo"}`, string(result))
}

// TestRouter_Route_UnknownMethod_ReturnsMethodNotFound verifies the default arm
// of the dispatch table carries the method name in the message.
func TestRouter_Route_UnknownMethod_ReturnsMethodNotFound(t *testing.T) {
	r := NewRouter(logging.GetNoopLogger())

	_, err := r.Route(context.Background(), "bogus/method", nil)
	require.Error(t, err)

	code, msg := mcperrors.MapToJSONRPC(err)
	assert.Equal(t, -32601, code)
	assert.Equal(t, "Method 'bogus/method' not found", msg)
}

// TestRouter_Methods_ReturnsSortedNames verifies introspection ordering.
func TestRouter_Methods_ReturnsSortedNames(t *testing.T) {
	r := NewRouter(logging.GetNoopLogger())
	require.NoError(t, r.AddRoute("tools/list", echoParamsHandler))
	require.NoError(t, r.AddRoute("initialize", echoParamsHandler))
	require.NoError(t, r.AddRoute("prompts/get", echoParamsHandler))

	assert.Equal(t, []string{"initialize", "prompts/get", "tools/list"}, r.Methods())
}
