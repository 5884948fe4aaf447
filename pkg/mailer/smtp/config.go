package smtp

import "time"

// TLS policies accepted by Config.TLS.
const (
	TLSMandatory     = "mandatory"     // STARTTLS required
	TLSOpportunistic = "opportunistic" // STARTTLS when offered
	TLSImplicit      = "ssl"           // implicit TLS, usually port 465
	TLSNone          = "none"
)

// Config holds SMTP provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host        string        `env:"SMTP_HOST"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	SenderEmail string        `env:"SMTP_FROM_EMAIL"`
	SenderName  string        `env:"SMTP_FROM_NAME" envDefault:"Portfolio Contact"`
	TLS         string        `env:"SMTP_TLS" envDefault:"mandatory"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}
