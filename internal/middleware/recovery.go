// file: internal/middleware/recovery.go
package middleware

import (
	"context"
	"fmt"

	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// NewRecoveryMiddleware converts a panic inside the wrapped handler into an
// internal error, so one faulting request cannot take down the process.
// The serve loop turns the returned error into a JSON-RPC error response.
func NewRecoveryMiddleware(logger logging.Logger) mcptypes.MiddlewareFunc {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "recovery_middleware")

	return func(next mcptypes.MessageHandler) mcptypes.MessageHandler {
		return func(ctx context.Context, message []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Recovered from panic while handling message.", "panic", r)
					resp = nil
					err = mcperrors.NewInternalError(fmt.Sprintf("Internal error: %v", r), nil)
				}
			}()
			return next(ctx, message)
		}
	}
}
