package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Intake kinds accepted by CONTACT_INTAKE
const (
	IntakeSimulated = "simulated"
	IntakeMailgun   = "mailgun"
	IntakeWebhook   = "webhook"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"8080"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	Site      SiteConfig
	Contact   ContactConfig
	Email     EmailConfig
	Webhook   WebhookConfig
	Session   SessionConfig
	Scheduler SchedulerConfig
	Otel      OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ListenAddr returns host:port for the HTTP server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// SiteConfig holds presentation settings
type SiteConfig struct {
	Name    string `env:"SITE_NAME" envDefault:"商途 AI"`
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	// ICP is the filing number printed in the footer
	ICP string `env:"SITE_ICP" envDefault:"浙ICP备2024000000号"`
}

// ContactConfig controls the contact form intake
type ContactConfig struct {
	// Intake selects the backend: simulated, mailgun or webhook
	Intake string `env:"CONTACT_INTAKE" envDefault:"simulated"`
	// SubmitDelay is how long the simulated intake takes to accept a submission
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1500ms"`
	// SuccessHold is how long the success (or failure) notice stays visible
	SuccessHold time.Duration `env:"CONTACT_SUCCESS_HOLD" envDefault:"5s"`
	// Recipient receives lead emails when the mailgun intake is used
	Recipient string `env:"CONTACT_RECIPIENT" envDefault:"344549268@qq.com"`
	// RateLimit is the sustained submissions per minute allowed per client IP
	RateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"6"`
	// RateBurst is the burst size per client IP
	RateBurst int `env:"CONTACT_RATE_BURST" envDefault:"3"`
}

// IntakeKind returns the normalized intake selector
func (c ContactConfig) IntakeKind() string {
	return strings.ToLower(strings.TrimSpace(c.Intake))
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API endpoint (EU region)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"商途 AI"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// From returns the formatted sender address
func (e *EmailConfig) From() string {
	if e.FromName == "" {
		return e.FromEmail
	}
	return fmt.Sprintf("%s <%s>", e.FromName, e.FromEmail)
}

// WebhookConfig holds the CRM webhook intake settings
type WebhookConfig struct {
	URL     string        `env:"CONTACT_WEBHOOK_URL" envDefault:""`
	Token   string        `env:"CONTACT_WEBHOOK_TOKEN" envDefault:""`
	Timeout time.Duration `env:"CONTACT_WEBHOOK_TIMEOUT" envDefault:"10s"`
}

// IsConfigured returns true if a webhook URL is set
func (w *WebhookConfig) IsConfigured() bool {
	return w.URL != ""
}

// SessionConfig holds visitor session settings
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"shangtu_sid"`
	Secure        bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// SchedulerConfig toggles background tasks
type SchedulerConfig struct {
	Enabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`
}

// Validate checks cross-field constraints that struct tags cannot express
func (c *Config) Validate() error {
	switch c.Contact.IntakeKind() {
	case IntakeSimulated:
	case IntakeMailgun:
		if !c.Email.IsConfigured() {
			return fmt.Errorf("CONTACT_INTAKE=mailgun requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
		}
	case IntakeWebhook:
		if !c.Webhook.IsConfigured() {
			return fmt.Errorf("CONTACT_INTAKE=webhook requires CONTACT_WEBHOOK_URL")
		}
	default:
		return fmt.Errorf("unknown CONTACT_INTAKE %q", c.Contact.Intake)
	}
	if c.Contact.SubmitDelay < 0 || c.Contact.SuccessHold < 0 {
		return fmt.Errorf("contact delays must not be negative")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("contact_intake", cfg.Contact.IntakeKind()),
		slog.Duration("session_ttl", cfg.Session.TTL),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
