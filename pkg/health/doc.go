// Package health provides liveness and readiness HTTP handlers.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared timeout
// and answers 503 when any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": mailer.Healthcheck(sender),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client asks for
// JSON with an Accept: application/json header or ?format=json:
//
//	{"status":"unhealthy","checks":{"mailer":{"status":"unhealthy","error":"..."}}}
package health
