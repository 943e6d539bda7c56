// file: internal/mcp/jsonrpc_test.go
package mcp

import (
	"encoding/json"
	"testing"

	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeRequest_ValidRequest_PreservesRawID verifies the correlation id
// survives decoding byte for byte, whatever JSON type the client used.
func TestDecodeRequest_ValidRequest_PreservesRawID(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantID string
	}{
		{name: "numeric id", line: `{"jsonrpc":"2.0","id":7,"method":"tools/list"}`, wantID: "7"},
		{name: "string id", line: `{"jsonrpc":"2.0","id":"abc-1","method":"tools/list"}`, wantID: `"abc-1"`},
		{name: "absent id", line: `{"jsonrpc":"2.0","method":"tools/list"}`, wantID: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := DecodeRequest([]byte(tc.line))
			require.NoError(t, err)
			assert.Equal(t, "tools/list", req.Method)
			assert.Equal(t, tc.wantID, string(req.ID))
		})
	}
}

// TestDecodeRequest_MalformedJSON_YieldsParseError verifies the -32700 arm.
func TestDecodeRequest_MalformedJSON_YieldsParseError(t *testing.T) {
	_, err := DecodeRequest([]byte(`{not json`))
	require.Error(t, err)

	code, message := mcperrors.MapToJSONRPC(err)
	assert.Equal(t, int(mcperrors.ErrParseError), code)
	assert.Equal(t, "Parse error", message)
}

// TestRequest_IsNotification covers absent, null, and present ids.
func TestRequest_IsNotification(t *testing.T) {
	assert.True(t, (&Request{}).IsNotification())
	assert.True(t, (&Request{ID: json.RawMessage("null")}).IsNotification())
	assert.False(t, (&Request{ID: json.RawMessage("1")}).IsNotification())
}

// TestEncodeResponse_SuccessAndError_SingleLineShapes verifies the wire
// shapes: success carries result and no error, failure carries error and no
// result, and neither contains a raw newline.
func TestEncodeResponse_SuccessAndError_SingleLineShapes(t *testing.T) {
	success, err := EncodeResponse(NewSuccessResponse(json.RawMessage("1"), json.RawMessage(`{"ok":true}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`, string(success))
	assert.NotContains(t, string(success), "\n")

	failure, err := EncodeResponse(NewErrorResponse(json.RawMessage(`"r-2"`),
		mcperrors.NewMethodNotFoundError("Method 'bogus' not found")))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"jsonrpc":"2.0","id":"r-2","error":{"code":-32601,"message":"Method 'bogus' not found"}}`,
		string(failure))
}

// TestNewErrorResponse_NilID_MarshalsAsNull verifies the parse-error contract
// of answering with a literal null id.
func TestNewErrorResponse_NilID_MarshalsAsNull(t *testing.T) {
	data, err := EncodeResponse(NewErrorResponse(nil, mcperrors.NewParseError("Parse error", nil)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`, string(data))
}
