// Package logger builds the structured slog logger used across the service.
//
// Records are written as JSON to stdout. Two optional sinks can be enabled from
// configuration: a rotating log file (lumberjack) and Sentry, where error records
// become issues and warnings are kept as searchable logs.
//
// Context extractors attach request-scoped values to every record:
//
//	log, shutdown := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
//	defer shutdown(context.Background())
//
//	log.InfoContext(ctx, "contact delivered", slog.String("email_id", id))
//	// {"level":"INFO","msg":"contact delivered","email_id":"...","request_id":"..."}
//
// When SENTRY_DSN is empty or Sentry fails to initialize, logging continues on
// stdout only, so the same code path works in development and production.
package logger
