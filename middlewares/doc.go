// Package middlewares provides the HTTP middleware folio applications share.
//
// # Request ID
//
// RequestID keeps an upstream X-Request-ID (or X-Correlation-ID) or generates a
// UUID, stores it in the request context and echoes it in the response.
// RequestIDExtractor adds it to every log entry:
//
//	app := folio.New(
//	    folio.WithCustomLogger(logger.New(middlewares.RequestIDExtractor())),
//	    folio.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics into *PanicError values for the app's ErrorHandler,
// which renders them as a generic 500:
//
//	folio.WithErrorHandler(func(c folio.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.JSON(500, map[string]string{"error": "Internal server error"})
//	    }
//	    ...
//	})
//
// # CORS
//
// CORS answers preflight requests and sets Access-Control-* headers for
// allowed origins, so the contact form can post from a separately hosted site.
//
// # Request logging
//
// RequestLogger writes one structured log line per request.
//
// Recommended order: RequestID, RequestLogger, Recover, CORS.
package middlewares
