package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/acmeconsole/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor adding "request_id" to every record.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
