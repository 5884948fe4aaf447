package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/folio/internal/contact"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/mailer/smtp"
)

// Mail providers accepted by MAILER_PROVIDER.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// ErrInvalid indicates the configuration cannot be used to serve traffic.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the application.
type Config struct {
	// Server
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	StaticDir       string        `env:"STATIC_DIR"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Metrics
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`

	Log     logger.Config
	Contact Contact

	// Mail delivery
	Provider string `env:"MAILER_PROVIDER" envDefault:"resend"`
	Mailer   mailer.Config
	Resend   resend.Config
	SMTP     smtp.Config
}

// Contact configures the contact form.
type Contact struct {
	// Recipient is the site owner's address. It is never taken from a request.
	Recipient    string `env:"CONTACT_RECIPIENT"`
	MaxBodyBytes int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads .env files, then parses the environment.
// Without explicit files an optional ".env" in the working directory is used.
// Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem that would prevent serving contact requests.
func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.Contact.Recipient == "":
		errs = append(errs, errors.New("CONTACT_RECIPIENT is required"))
	case !contact.ValidEmail(c.Contact.Recipient):
		errs = append(errs, fmt.Errorf("CONTACT_RECIPIENT %q is not an email address", c.Contact.Recipient))
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.Contact.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("CONTACT_MAX_BODY_BYTES must be positive"))
	}

	switch c.Provider {
	case ProviderResend:
		if c.Resend.APIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required for the resend provider"))
		}
		if c.Resend.SenderEmail == "" {
			errs = append(errs, errors.New("RESEND_FROM_EMAIL is required for the resend provider"))
		}
	case ProviderSMTP:
		if c.SMTP.Host == "" {
			errs = append(errs, errors.New("SMTP_HOST is required for the smtp provider"))
		}
		if c.SMTP.SenderEmail == "" {
			errs = append(errs, errors.New("SMTP_FROM_EMAIL is required for the smtp provider"))
		}
		switch c.SMTP.TLS {
		case smtp.TLSMandatory, smtp.TLSOpportunistic, smtp.TLSImplicit, smtp.TLSNone:
		default:
			errs = append(errs, fmt.Errorf("SMTP_TLS %q is not one of mandatory, opportunistic, ssl, none", c.SMTP.TLS))
		}
	default:
		errs = append(errs, fmt.Errorf("MAILER_PROVIDER %q is not one of resend, smtp", c.Provider))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalid}, errs...)...)
}
