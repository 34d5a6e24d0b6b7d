package contact

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/wutian475-collab/wutian111/internal/config"
)

// Module provides the configured Intake and the submission rate limiter.
var Module = fx.Module("contact",
	fx.Provide(
		NewIntake,
		NewRateLimiterFromConfig,
	),
)

// NewIntake selects the intake named by CONTACT_INTAKE and instruments it.
func NewIntake(cfg *config.Config, log *slog.Logger) (Intake, error) {
	var (
		intake Intake
		err    error
	)
	switch cfg.Contact.IntakeKind() {
	case config.IntakeMailgun:
		intake, err = NewMailgunIntake(cfg.Email, cfg.Contact.Recipient, log)
	case config.IntakeWebhook:
		intake, err = NewWebhookIntake(cfg.Webhook, log)
	case config.IntakeSimulated:
		intake = NewSimulatedIntake(cfg.Contact.SubmitDelay, cfg.Contact.Recipient, log)
	default:
		err = fmt.Errorf("unknown contact intake %q", cfg.Contact.Intake)
	}
	if err != nil {
		return nil, fmt.Errorf("create contact intake: %w", err)
	}

	log.Info("contact intake ready", slog.String("intake", intake.Name()))
	return Instrument(intake, log), nil
}

// NewRateLimiterFromConfig creates the per-IP submit limiter.
func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Contact.RateLimit, cfg.Contact.RateBurst)
}
