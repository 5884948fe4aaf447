package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/internal/config"
	"github.com/dmitrymomot/folio/internal/contact"
	"github.com/dmitrymomot/folio/internal/handlers"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/mailer/smtp"
	"github.com/dmitrymomot/folio/pkg/metrics"
)

// Server is the assembled portfolio API.
type Server struct {
	app      *folio.App
	cfg      *config.Config
	log      *slog.Logger
	shutdown logger.ShutdownFunc
	metrics  *metrics.Metrics
}

// Option overrides a dependency Server would otherwise build from config.
type Option func(*options)

type options struct {
	sender mailer.Sender
	logger *slog.Logger
}

// WithSender replaces the provider selected by MAILER_PROVIDER.
func WithSender(s mailer.Sender) Option {
	return func(o *options) { o.sender = s }
}

// WithLogger replaces the logger built from the LOG_* settings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewSender returns the mail provider named by cfg.Provider.
func NewSender(cfg *config.Config) (mailer.Sender, error) {
	switch cfg.Provider {
	case config.ProviderResend:
		return resend.New(cfg.Resend), nil
	case config.ProviderSMTP:
		return smtp.New(cfg.SMTP), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail provider %q", config.ErrInvalid, cfg.Provider)
	}
}

// New wires the contact endpoint, health checks, metrics and the optional
// static site into an app. cfg must already be validated.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	s := &Server{cfg: cfg, log: o.logger}
	if s.log == nil {
		s.log, s.shutdown = logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
	}

	sender := o.sender
	if sender == nil {
		var err error
		if sender, err = NewSender(cfg); err != nil {
			return nil, err
		}
	}

	m := mailer.New(sender, contact.NewRenderer(), cfg.Mailer)
	svc := contact.NewService(m, cfg.Contact.Recipient)

	appOpts := []folio.Option{
		folio.WithCustomLogger(s.log.With("component", "api")),
		folio.WithMaxBodyBytes(cfg.Contact.MaxBodyBytes),
		folio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
		),
		folio.WithErrorHandler(handlers.JSONErrorHandler),
		folio.WithNotFoundHandler(handlers.NotFound),
		folio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		folio.WithHealthChecks(
			folio.WithReadinessCheck("mailer", mailer.Healthcheck(sender)),
		),
	}

	var observer handlers.SubmissionObserver
	if cfg.MetricsEnabled {
		s.metrics = metrics.New(handlers.SubmissionOutcomes...)
		observer = s.metrics
		appOpts = append(appOpts,
			folio.WithHTTPMiddleware(s.metrics.Middleware),
			folio.WithMount(cfg.MetricsPath, s.metrics.Handler()),
		)
	}
	appOpts = append(appOpts, folio.WithHandlers(handlers.NewContact(svc, observer)))

	if cfg.StaticDir != "" {
		info, err := os.Stat(cfg.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir: %s is not a directory", cfg.StaticDir)
		}
		appOpts = append(appOpts, folio.WithStaticFiles("/", os.DirFS(cfg.StaticDir), "."))
	}

	s.app = folio.New(appOpts...)
	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.app.Router()
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives, then shuts down
// gracefully and flushes the logger.
func (s *Server) Run(ctx context.Context, opts ...folio.RunOption) error {
	runOpts := []folio.RunOption{
		folio.WithContext(ctx),
		folio.Address(s.cfg.Addr),
		folio.ShutdownTimeout(s.cfg.ShutdownTimeout),
		folio.Logger(s.log),
	}
	if s.shutdown != nil {
		runOpts = append(runOpts, folio.ShutdownHook(s.shutdown))
	}

	s.log.InfoContext(ctx, "starting server",
		slog.String("addr", s.cfg.Addr),
		slog.String("provider", s.cfg.Provider),
		slog.Bool("metrics", s.cfg.MetricsEnabled),
		slog.String("static_dir", s.cfg.StaticDir),
	)

	return s.app.Run(append(runOpts, opts...)...)
}
