// Package folio is the HTTP layer of a personal portfolio site whose one
// dynamic pathway is the contact form.
//
// It is a thin orchestration layer over chi: handlers declare routes, return
// errors, and the app's error handler renders them. Business logic stays in
// plain Go packages.
//
// # Quick Start
//
// Create an application with folio.New(), configure it with options, and
// call Run() to start the HTTP server:
//
//	app := folio.New(
//	    folio.WithLogger("api", middlewares.RequestIDExtractor()),
//	    folio.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    folio.WithErrorHandler(handlers.JSONErrorHandler),
//	    folio.WithHandlers(handlers.NewContact(svc, m)),
//	)
//
//	if err := app.Run(folio.Address(":8080")); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type ContactHandler struct {
//	    svc *contact.Service
//	}
//
//	func (h *ContactHandler) Routes(r folio.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
//	func (h *ContactHandler) submit(c folio.Context) error {
//	    var sub contact.Submission
//	    if err := c.BindJSON(&sub); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// # Errors
//
// A handler error that is (or wraps) an [HTTPError] carries its own status
// and client-safe message. Anything else is the error handler's to map.
//
// # Middleware
//
// [Middleware] wraps handlers to add cross-cutting concerns. The first
// registered runs outermost. Plain net/http middleware added with
// [WithHTTPMiddleware] runs outside all of them.
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM for graceful shutdown. Register cleanup
// functions with [ShutdownHook]:
//
//	err := app.Run(
//	    folio.ShutdownHook(func(ctx context.Context) error {
//	        return flushLogs(ctx)
//	    }),
//	)
package folio
