// file: internal/mcp/server.go
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/simplemcp/simplemcp/internal/catalog"
	"github.com/simplemcp/simplemcp/internal/config"
	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcp/router"
	"github.com/simplemcp/simplemcp/internal/mcp/state"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
	"github.com/simplemcp/simplemcp/internal/middleware"
	"github.com/simplemcp/simplemcp/internal/schema"
	"github.com/simplemcp/simplemcp/internal/transport"
)

// Server is a single-connection MCP server. It reads one request line at a
// time, handles it fully, writes exactly one response line, and only then
// reads the next line, so response ordering always matches request ordering.
type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	catalog   *catalog.Catalog
	validator *schema.ToolValidator
	machine   *state.Machine
	router    router.Router
	handler   mcptypes.MessageHandler
}

// NewServer creates a server over the given catalog. A nil config uses the
// defaults; a nil logger disables logging.
func NewServer(cfg *config.Config, cat *catalog.Catalog, logger logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = logging.GetNoopLogger()
	}

	validator, err := schema.NewToolValidator(cat.Tools(), logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tool argument validator")
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger.WithField("component", "mcp_server"),
		catalog:   cat,
		validator: validator,
		machine:   state.NewMachine(logger),
		router:    router.NewRouter(logger),
	}
	if err := s.registerRoutes(); err != nil {
		return nil, errors.Wrap(err, "failed to register method routes")
	}

	chain := middleware.NewChain(s.handleMessage)
	chain.Use(middleware.NewRecoveryMiddleware(logger))
	chain.Use(middleware.NewRequestLoggingMiddleware(logger))
	s.handler = chain.Handler()

	return s, nil
}

// registerRoutes populates the fixed dispatch table. The method set is
// closed; anything else falls through to the router's method-not-found arm.
func (s *Server) registerRoutes() error {
	routes := map[string]router.Handler{
		"initialize":     s.handleInitialize,
		"tools/list":     s.handleToolsList,
		"tools/call":     s.handleToolsCall,
		"resources/list": s.handleResourcesList,
		"resources/read": s.handleResourcesRead,
		"prompts/list":   s.handlePromptsList,
		"prompts/get":    s.handlePromptsGet,
	}
	for method, handler := range routes {
		if err := s.router.AddRoute(method, handler); err != nil {
			return err
		}
	}
	return nil
}

// ServeSTDIO serves the connection over the process's standard streams.
// This is how a gateway runs the server as a piped child process.
func (s *Server) ServeSTDIO(ctx context.Context) error {
	t := transport.NewNDJSONTransport(os.Stdin, os.Stdout, nil, s.logger)
	return s.Serve(ctx, t)
}

// Serve runs the request loop on the given transport until the context ends
// or the peer closes the stream. A terminated input stream is a normal
// shutdown and returns nil.
func (s *Server) Serve(ctx context.Context, t transport.Transport) error {
	s.logger.Info("Server processing loop started.",
		"server", s.cfg.Server.Name, "methods", s.router.Methods())
	defer func() {
		_ = s.machine.MarkShutdown(context.WithoutCancel(ctx))
		_ = t.Close()
		s.logger.Info("Server processing loop stopped.")
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Context ended, stopping server loop.")
			return ctx.Err()
		default:
			if err := s.processNextMessage(ctx, t); err != nil {
				if s.isCleanShutdown(err) {
					s.logger.Info("Input stream closed, shutting down.")
					return nil
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				// Failure was local to one request; keep serving.
				s.logger.Error("Non-terminal error processing message.", "error", err)
			}
		}
	}
}

// processNextMessage reads, handles, and answers a single message. Exactly
// one response line is written per line read, whether it decoded or not.
func (s *Server) processNextMessage(ctx context.Context, t transport.Transport) error {
	msgBytes, err := t.ReadMessage(ctx)
	if err != nil {
		return err
	}

	respBytes, handleErr := s.handler(ctx, msgBytes)
	if handleErr != nil {
		// The handler chain converts everything it can into a response
		// itself; an error here means a fault the chain could not embed
		// (e.g. a recovered panic). Answer with the best-effort request id.
		respBytes, err = EncodeResponse(NewErrorResponse(extractRequestID(msgBytes), handleErr))
		if err != nil {
			return errors.Wrap(err, "failed to encode error response")
		}
	}

	if writeErr := t.WriteMessage(ctx, respBytes); writeErr != nil {
		return errors.Wrap(writeErr, "failed to write response")
	}
	return nil
}

// handleMessage is the final handler at the end of the middleware chain.
// It owns the decode -> dispatch -> encode pipeline for one message and
// embeds every protocol-level failure in the response it returns.
func (s *Server) handleMessage(ctx context.Context, message []byte) ([]byte, error) {
	req, err := DecodeRequest(message)
	if err != nil {
		// Parse failure has no recoverable id; the contract is a null id.
		return EncodeResponse(NewErrorResponse(nil, err))
	}

	if s.cfg.Protocol.StrictInitialize && req.Method != "initialize" && !s.machine.Initialized() {
		s.logger.Warn("Rejecting method before initialization.", "method", req.Method)
		return EncodeResponse(NewErrorResponse(req.ID, mcperrors.NewNotInitializedError(req.Method)))
	}

	result, err := s.router.Route(ctx, req.Method, req.Params)
	if err != nil {
		return EncodeResponse(NewErrorResponse(req.ID, err))
	}

	if req.Method == "initialize" {
		if err := s.machine.MarkInitialized(ctx); err != nil {
			s.logger.Error("Failed to record initialization.", "error", err)
		}
	}

	// Requests without an id still get a response here. Strict JSON-RPC
	// would stay silent on notifications, but callers of this server
	// depend on one line out per line in.
	return EncodeResponse(NewSuccessResponse(req.ID, result))
}

// isCleanShutdown reports whether err is the peer ending the stream.
func (s *Server) isCleanShutdown(err error) bool {
	return errors.Is(err, io.EOF) || transport.IsClosedError(err)
}

// extractRequestID pulls the raw id out of message bytes, best effort.
// Returns nil (marshals as null) when the message does not parse.
func extractRequestID(message []byte) json.RawMessage {
	var parsed struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(message, &parsed); err != nil {
		return nil
	}
	return parsed.ID
}
