// file: internal/mcp/handlers_tools.go
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// listFilesPreviewLimit caps how many directory entries list_files renders
// before appending an ellipsis marker.
const listFilesPreviewLimit = 10

// handleToolsList returns the tool catalog in definition order.
func (s *Server) handleToolsList(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(mcptypes.ListToolsResult{Tools: s.catalog.Tools()})
}

// handleToolsCall dispatches to the named tool. An unknown tool name maps to
// method-not-found; a tool's own failure surfaces as an application error
// with the failure's description.
func (s *Server) handleToolsCall(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	var call mcptypes.CallToolRequest
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, mcperrors.NewInvalidParamsError("Invalid params for tools/call", err)
	}

	if _, ok := s.catalog.Tool(call.Name); !ok {
		return nil, mcperrors.NewMethodNotFoundError(fmt.Sprintf("Tool '%s' not found", call.Name))
	}

	if err := s.validator.Validate(call.Name, call.Arguments); err != nil {
		if s.cfg.Protocol.StrictToolArguments {
			return nil, err
		}
		// Advisory mode: the tool's own defaults carry missing arguments.
		s.logger.Warn("Tool arguments failed schema validation, proceeding.", "tool", call.Name, "error", err)
	}

	args, err := decodeToolArguments(call.Arguments)
	if err != nil {
		return nil, err
	}

	var text string
	switch call.Name {
	case "echo":
		text = runEcho(args)
	case "add":
		text, err = runAdd(args)
	case "list_files":
		text, err = runListFiles(args)
	}
	if err != nil {
		return nil, err
	}

	result := mcptypes.CallToolResult{Content: []mcptypes.Content{mcptypes.NewTextContent(text)}}
	return json.Marshal(result)
}

// decodeToolArguments parses the raw arguments object. Absent arguments are
// an empty map, so every tool sees its defaults apply.
func decodeToolArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, mcperrors.NewInvalidParamsError("Tool arguments must be an object", err)
	}
	return args, nil
}

// runEcho returns the message prefixed with "Echo: ", defaulting the message
// to "Hello!" when absent.
func runEcho(args map[string]any) string {
	message := "Hello!"
	if v, ok := args["message"]; ok {
		message = stringify(v)
	}
	return "Echo: " + message
}

// runAdd sums two numeric operands, defaulting each to 0 when missing.
func runAdd(args map[string]any) (string, error) {
	a, err := numericArgument(args, "a")
	if err != nil {
		return "", err
	}
	b, err := numericArgument(args, "b")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s + %s = %s", formatNumber(a), formatNumber(b), formatNumber(a+b)), nil
}

// runListFiles lists the entries of a directory, defaulting the path to ".".
// The rendered preview stops at the first ten entries, followed by an
// ellipsis marker when more exist. Enumeration failures surface with the
// operating system's own description.
func runListFiles(args map[string]any) (string, error) {
	path := "."
	if v, ok := args["path"]; ok {
		path = stringify(v)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", mcperrors.NewToolExecutionError(err.Error(), err)
	}

	limit := len(entries)
	if limit > listFilesPreviewLimit {
		limit = listFilesPreviewLimit
	}
	names := make([]string, 0, limit)
	for _, entry := range entries[:limit] {
		names = append(names, entry.Name())
	}

	text := fmt.Sprintf("Files in %s: %s", path, strings.Join(names, ", "))
	if len(entries) > listFilesPreviewLimit {
		text += "..."
	}
	return text, nil
}

// numericArgument reads a JSON number from the arguments, defaulting to 0
// when absent. A present non-numeric value is a handler fault, surfaced as
// an internal error like any other uncaught failure.
func numericArgument(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, nil
	}
	n, ok := v.(float64)
	if !ok {
		return 0, mcperrors.NewInternalError(
			fmt.Sprintf("Internal error: operand '%s' is not a number", key), nil)
	}
	return n, nil
}

// formatNumber renders a JSON number the shortest exact way, so integral
// values print without a trailing ".0" (2, not 2.0) and fractions keep
// their digits (2.5).
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// stringify renders any JSON value as the text a template would embed.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return fmt.Sprintf("%v", v)
}
