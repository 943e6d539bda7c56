// file: internal/mcp/handlers_resources.go
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// sampleDataText is the body served for data://sample.
const sampleDataText = "This is sample data from the simple MCP server.\n" +
	"It demonstrates resource reading capabilities.\n"

// testConfigDocument is the body served for config://test. Field order is
// fixed by the struct so the serialized form is stable across reads.
type testConfigDocument struct {
	Test    bool   `json:"test"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

// handleResourcesList returns the resource catalog in definition order.
func (s *Server) handleResourcesList(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(mcptypes.ListResourcesResult{Resources: s.catalog.Resources()})
}

// handleResourcesRead resolves a URI to its content. An unknown URI is an
// invalid-params error, not method-not-found: the method exists, the
// argument does not.
func (s *Server) handleResourcesRead(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	var read mcptypes.ReadResourceRequest
	if err := json.Unmarshal(params, &read); err != nil {
		return nil, mcperrors.NewInvalidParamsError("Invalid params for resources/read", err)
	}

	resource, ok := s.catalog.Resource(read.URI)
	if !ok {
		return nil, mcperrors.NewInvalidParamsError(fmt.Sprintf("Resource not found: %s", read.URI), nil)
	}

	text, err := s.resolveResourceContent(read.URI)
	if err != nil {
		return nil, err
	}

	result := mcptypes.ReadResourceResult{
		Contents: []mcptypes.ResourceContents{{
			URI:      resource.URI,
			MimeType: resource.MimeType,
			Text:     text,
		}},
	}
	return json.Marshal(result)
}

// resolveResourceContent produces the body for a catalog URI. The catalog
// and this switch must stay in step; a catalog entry without a body here is
// a server bug and surfaces as an internal error.
func (s *Server) resolveResourceContent(uri string) (string, error) {
	switch uri {
	case "config://test":
		doc := testConfigDocument{Test: true, Server: "simple-mcp", Version: "1.0"}
		data, err := json.Marshal(doc)
		if err != nil {
			return "", mcperrors.NewInternalError("failed to serialize test config resource", err)
		}
		return string(data), nil
	case "data://sample":
		return sampleDataText, nil
	default:
		return "", mcperrors.NewInternalError(
			fmt.Sprintf("Internal error: no content registered for resource '%s'", uri), nil)
	}
}
