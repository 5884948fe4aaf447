// Package internal provides the core HTTP types for folio.
//
// Import "github.com/dmitrymomot/folio", which re-exports the public API,
// instead of this package.
//
// # Core Types
//
//   - App: HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: request/response access, JSON binding and request-scoped logging
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a Router
//   - HandlerFunc: route handlers that return errors
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: renders errors returned from handlers and middleware
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func (h *ContactHandler) submit(c folio.Context) error {
//	    id, err := h.svc.Submit(c, sub)
//	    ...
//	}
//
// # Errors
//
// A handler returns an error instead of writing one. The app passes it to the
// configured ErrorHandler unless a response was already written. Return an
// *HTTPError to choose the status code and the client-facing message; its
// wrapped Err is meant for logs.
//
// # Middleware Order
//
// Plain net/http middleware (WithHTTPMiddleware) wraps the app middleware
// (WithMiddleware), which runs in registration order, outermost first.
package internal
