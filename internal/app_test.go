package internal_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func jsonErrorHandler(c internal.Context, err error) error {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return c.JSON(httpErr.Code, map[string]string{"error": httpErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal"})
}

func serve(app *internal.App, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithErrorHandler(jsonErrorHandler),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/bad", func(c internal.Context) error {
				return c.Error(http.StatusBadRequest, "Invalid email format")
			})
			r.GET("/boom", func(internal.Context) error {
				return errors.New("database exploded")
			})
			r.GET("/written", func(c internal.Context) error {
				_ = c.String(http.StatusAccepted, "done")
				return errors.New("late failure")
			})
		})),
	)

	w := serve(app, http.MethodGet, "/bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email format"}`, w.Body.String())

	w = serve(app, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database")

	w = serve(app, http.MethodGet, "/written")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "done", w.Body.String())
}

func TestApp_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(internal.Context) error { return errors.New("x") })
	})))

	w := serve(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestApp_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		trace []string
	)
	record := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				mu.Lock()
				trace = append(trace, name)
				mu.Unlock()
				return next(c)
			}
		}
	}
	httpMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			trace = append(trace, "http")
			mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}

	app := internal.New(
		internal.WithMiddleware(record("global-1"), record("global-2")),
		internal.WithHTTPMiddleware(httpMW),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.Route("/api", func(r internal.Router) {
				r.Use(record("group"))
				r.GET("/x", func(c internal.Context) error {
					return c.NoContent(http.StatusNoContent)
				}, record("route-1"), record("route-2"))
			})
		})),
	)

	w := serve(app, http.MethodGet, "/api/x")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"http", "global-1", "global-2", "group", "route-1", "route-2"}, trace)
}

func TestApp_MiddlewareErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	deny := func(internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			return internal.ErrBadRequest("denied")
		}
	}

	app := internal.New(
		internal.WithErrorHandler(jsonErrorHandler),
		internal.WithMiddleware(deny),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	w := serve(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"denied"}`, w.Body.String())
}

func TestApp_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithErrorHandler(jsonErrorHandler),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return internal.ErrNotFound("Not found")
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return internal.ErrMethodNotAllowed("Method not allowed")
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/api/contact", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	w := serve(app, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = serve(app, http.MethodGet, "/api/contact")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	healthy := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("mailer", func(context.Context) error { return nil }),
	))
	assert.Equal(t, http.StatusOK, serve(healthy, http.MethodGet, "/health/live").Code)
	assert.Equal(t, http.StatusOK, serve(healthy, http.MethodGet, "/health/ready").Code)

	unhealthy := internal.New(internal.WithHealthChecks(
		internal.WithLivenessPath("/livez"),
		internal.WithReadinessPath("/readyz"),
		internal.WithReadinessCheck("mailer", func(context.Context) error { return errors.New("no api key") }),
	))
	assert.Equal(t, http.StatusOK, serve(unhealthy, http.MethodGet, "/livez").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(unhealthy, http.MethodGet, "/readyz").Code)
}

func TestApp_StaticFilesAndMounts(t *testing.T) {
	t.Parallel()

	site := fstest.MapFS{
		"out/index.html":       {Data: []byte("<h1>Portfolio</h1>")},
		"out/about/index.html": {Data: []byte("<h1>About</h1>")},
		"out/assets/app.css":   {Data: []byte("body{}")},
	}

	app := internal.New(
		internal.WithMount("/metrics", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("metrics"))
		})),
		internal.WithStaticFiles("/", site, "out"),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/api/contact", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	w := serve(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(app, http.MethodGet, "/about/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About")

	w = serve(app, http.MethodGet, "/assets/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	// No index.html: no listing.
	assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/assets/").Code)

	assert.Equal(t, "metrics", serve(app, http.MethodGet, "/metrics").Body.String())
	assert.Equal(t, http.StatusOK, serve(app, http.MethodPost, "/api/contact").Code)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/ping", func(c internal.Context) error { return c.String(http.StatusOK, "pong") })
	})))

	addrCh := make(chan net.Addr, 1)
	hookCalled := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run(
			internal.Address("127.0.0.1:0"),
			internal.WithContext(ctx),
			internal.ShutdownTimeout(5*time.Second),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownHook(func(context.Context) error {
				close(hookCalled)
				return nil
			}),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-hookCalled
}

func TestApp_Run_HookErrorsAreJoined(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hookErr := errors.New("flush failed")
	err := internal.New().Run(
		internal.Address("127.0.0.1:0"),
		internal.WithContext(ctx),
		internal.ShutdownHook(func(context.Context) error { return hookErr }),
	)
	require.ErrorIs(t, err, hookErr)
}
