package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONErrorHandler renders handler errors as {"error": message}.
// An HTTPError keeps its status and message. Anything else, recovered panics
// included, becomes a generic 500. Server errors are logged with their cause.
func JSONErrorHandler(c folio.Context, err error) error {
	httpErr := folio.AsHTTPError(err)
	if httpErr == nil {
		httpErr = folio.ErrInternal(MsgInternalError, folio.WithError(err))
	}

	cause := httpErr.Err
	if cause == nil {
		cause = err
	}
	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed",
			slog.Int("status", httpErr.Code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", cause),
		)
	} else {
		c.LogDebug("request rejected",
			slog.Int("status", httpErr.Code),
			slog.Any("error", cause),
		)
	}

	return c.JSON(httpErr.Code, ErrorResponse{Error: httpErr.Message})
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(c folio.Context) error {
	return folio.ErrNotFound(MsgNotFound)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c folio.Context) error {
	return folio.ErrMethodNotAllowed(MsgMethodNotAllowed)
}
