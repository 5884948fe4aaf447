// Package metrics exposes Prometheus collectors for the HTTP server and the
// contact pipeline on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests no route matched, so scanners probing random
// paths cannot grow the label set.
const unmatchedRoute = "unmatched"

// Metrics owns a registry with Go runtime, process, HTTP and contact collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	reqDuration *prometheus.HistogramVec
	submissions *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
// Every outcome in outcomes is pre-initialized to zero.
func New(outcomes ...string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: []float64{0.01, 0.1, 0.3, 1.2, 5},
			},
			[]string{"path", "method", "status"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_contact_submissions_total",
				Help: "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reqDuration,
		m.submissions,
	)

	for _, o := range outcomes {
		m.submissions.WithLabelValues(o)
	}

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSubmission counts one contact submission with the given outcome.
func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request durations into http_request_duration_seconds.
// Paths are labeled with the chi route pattern ("/api/contact"), not the raw URL.
// Place it outside the recover middleware so recovered panics are recorded as 500.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		protoMajor := max(r.ProtoMajor, 1)
		ww := middleware.NewWrapResponseWriter(w, protoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		// WriteHeader never called: net/http answers 200.
		if status == 0 {
			status = http.StatusOK
		}
		if status < 100 || status > 599 {
			status = http.StatusInternalServerError
		}

		m.reqDuration.WithLabelValues(
			routePattern(r),
			r.Method,
			strconv.Itoa(status),
		).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
