// file: internal/middleware/request_logging.go
package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// NewRequestLoggingMiddleware logs one line per handled message with the
// method, request id, and handling duration. Extraction of method and id is
// best effort; a line that fails to parse is logged with placeholders and
// still forwarded, since the parse-error response is the handler's job.
func NewRequestLoggingMiddleware(logger logging.Logger) mcptypes.MiddlewareFunc {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "request_logging_middleware")

	return func(next mcptypes.MessageHandler) mcptypes.MessageHandler {
		return func(ctx context.Context, message []byte) ([]byte, error) {
			method, id := extractMessageInfo(message)
			start := time.Now()

			resp, err := next(ctx, message)

			elapsed := time.Since(start)
			if err != nil {
				log.Warn("Handled message with error.", "method", method, "id", id, "duration", elapsed, "error", err)
			} else {
				log.Debug("Handled message.", "method", method, "id", id, "duration", elapsed)
			}
			return resp, err
		}
	}
}

// extractMessageInfo pulls the method name and id out of raw message bytes
// for logging. Returns placeholders when the message does not parse.
func extractMessageInfo(message []byte) (method string, id string) {
	var parsed struct {
		Method string          `json:"method"`
		ID     json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(message, &parsed); err != nil {
		return "<unparsed>", "<unknown>"
	}
	method = parsed.Method
	if parsed.ID == nil {
		return method, "<none>"
	}
	return method, string(parsed.ID)
}
