// file: internal/mcp/handlers_core.go
package mcp

import (
	"context"
	"encoding/json"

	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// handleInitialize answers the initialization handshake. The client's
// protocol version, capabilities, and info are recorded for logging but not
// validated; no error case is defined for this method.
func (s *Server) handleInitialize(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	var clientParams mcptypes.InitializeRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &clientParams); err != nil {
			s.logger.Debug("Ignoring unparsable initialize params.", "error", err)
		}
	}
	if clientParams.ClientInfo.Name != "" {
		s.logger.Info("Client initializing.",
			"clientName", clientParams.ClientInfo.Name,
			"clientVersion", clientParams.ClientInfo.Version,
			"clientProtocolVersion", clientParams.ProtocolVersion)
	}

	result := mcptypes.InitializeResult{
		ProtocolVersion: s.cfg.Server.ProtocolVersion,
		Capabilities: mcptypes.ServerCapabilities{
			Tools:     &mcptypes.ToolsCapability{ListChanged: true},
			Resources: &mcptypes.ResourcesCapability{Subscribe: true, ListChanged: true},
			Prompts:   &mcptypes.PromptsCapability{ListChanged: true},
		},
		ServerInfo: mcptypes.Implementation{
			Name:    s.cfg.Server.Name,
			Version: s.cfg.Server.Version,
		},
	}
	return json.Marshal(result)
}
