package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Middleware wraps the handler of the named tool, returning a new Handler
// with added behaviour.
type Middleware func(name string, next Handler) Handler

// --- Recovery middleware ---

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(name string, next Handler) Handler {
		return func(ctx context.Context, input json.RawMessage) (result any, err error) {
			defer func() {
				if r := recover(); r != nil {
					result = nil
					err = fmt.Errorf("tool %s panicked: %v", name, r)
				}
			}()

			return next(ctx, input)
		}
	}
}

// --- Logger middleware ---

// Logger returns a Middleware that logs tool start, duration, and error.
// Each call is tagged with a fresh call_id.
func Logger(log *slog.Logger) Middleware {
	return func(name string, next Handler) Handler {
		return func(ctx context.Context, input json.RawMessage) (any, error) {
			callID := uuid.NewString()

			log.DebugContext(ctx, "tool started", "tool", name, "call_id", callID)

			start := time.Now()

			result, err := next(ctx, input)

			duration := time.Since(start)

			if err != nil {
				log.ErrorContext(ctx, "tool finished with error",
					"tool", name,
					"call_id", callID,
					"duration", duration,
					"error", err,
				)
			} else {
				log.InfoContext(ctx, "tool finished",
					"tool", name,
					"call_id", callID,
					"duration", duration,
				)
			}

			return result, err
		}
	}
}
