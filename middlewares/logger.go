package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/folio/internal"
)

// statusReporter is implemented by internal.ResponseWriter.
type statusReporter interface {
	Status() int
	Size() int64
}

// RequestLogger returns middleware that logs one line per request with the
// method, path, status, size and duration. Errors returned by the chain are
// passed through unchanged; their status is decided by the error handler.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if sr, ok := c.Response().(statusReporter); ok && c.Written() {
				attrs = append(attrs, slog.Int("status", sr.Status()), slog.Int64("bytes", sr.Size()))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			c.LogInfo("http request", attrs...)
			return err
		}
	}
}
