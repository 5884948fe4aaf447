// Package server assembles the portfolio API from configuration: mail
// provider, contact service, middleware stack, health checks, metrics and
// the optional static site.
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//	srv, err := server.New(cfg)
//	err = srv.Run(ctx)
//
// Middleware order is RequestID, RequestLogger, Recover, CORS, with the
// metrics middleware outside all of them.
package server
