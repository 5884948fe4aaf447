package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures the process logger.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	File   FileConfig
	Sentry SentryConfig
}

// FileConfig enables an additional rotating JSON log file.
// Rotation is handled by lumberjack; an empty Path disables the file sink.
type FileConfig struct {
	Path       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_FILE_COMPRESS" envDefault:"true"`
}

// SentryConfig enables error reporting to Sentry. An empty DSN disables it.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel selects which records are kept as Sentry logs: warnings+errors by default,
	// errors only when set to slog.LevelError. Errors always create issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// ShutdownFunc flushes and releases logger resources.
type ShutdownFunc func(ctx context.Context) error

// New returns a JSON stdout logger at info level.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewWithConfig builds the process logger: JSON to stdout, optionally mirrored to a
// rotating file and to Sentry. The returned ShutdownFunc flushes Sentry and closes the file.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) (*slog.Logger, ShutdownFunc) {
	return newWithWriter(os.Stdout, cfg, extractors...)
}

func newWithWriter(stdout io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, ShutdownFunc) {
	var (
		out       = stdout
		shutdowns []ShutdownFunc
	)

	if cfg.File.Path != "" {
		fw := newFileWriter(cfg.File)
		out = io.MultiWriter(stdout, fw)
		shutdowns = append(shutdowns, func(context.Context) error { return fw.Close() })
	}

	base := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	handlers := []slog.Handler{base}

	if cfg.Sentry.DSN != "" {
		sh, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			// Keep logging locally when Sentry is unreachable or misconfigured.
			slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			handlers = append(handlers, sh)
			shutdowns = append(shutdowns, flushSentry)
		}
	}

	log := slog.New(NewLogHandlerDecorator(newFanoutHandler(handlers...), extractors...))

	return log, func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdowns {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

func newFileWriter(cfg FileConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

func newSentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background()), nil
}

var errSentryFlush = errors.New("logger: sentry flush timed out")

func flushSentry(ctx context.Context) error {
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return errSentryFlush
	}
	return nil
}
