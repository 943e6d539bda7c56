// Package mcp implements the MCP server: the JSON-RPC message codec, the
// request dispatch loop, and the per-method handlers.
package mcp

// file: internal/mcp/jsonrpc.go

import (
	"encoding/json"

	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
)

// Version is the JSON-RPC protocol version marker carried by every message.
const Version = "2.0"

// Request is a decoded JSON-RPC 2.0 request. The ID stays raw so the client's
// correlation token (string, number, or absent) is echoed back verbatim.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no usable id.
// Note that this server still answers notifications; see the dispatcher.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Response is a JSON-RPC 2.0 response. Exactly one of Result and Error is
// set; the constructors below maintain that invariant. A nil ID marshals as
// JSON null, which is the contract for unparsable requests.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// DecodeRequest parses one line into a Request. A line that is not valid
// JSON yields a parse error (-32700); the caller answers it with a null id.
func DecodeRequest(line []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return nil, mcperrors.NewParseError("Parse error", err)
	}
	return &req, nil
}

// EncodeResponse serializes a response to a single line. encoding/json never
// emits raw newlines inside a JSON document, so the output is line-safe.
func EncodeResponse(resp *Response) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, mcperrors.NewInternalError("failed to encode response", err)
	}
	return data, nil
}

// NewSuccessResponse builds a response carrying a result for the given id.
func NewSuccessResponse(id json.RawMessage, result json.RawMessage) *Response {
	return &Response{JSONRPC: Version, ID: id, Result: result}
}

// NewErrorResponse builds a response carrying the JSON-RPC mapping of err
// for the given id. Pass a nil id for parse failures.
func NewErrorResponse(id json.RawMessage, err error) *Response {
	code, message := mcperrors.MapToJSONRPC(err)
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message},
	}
}
