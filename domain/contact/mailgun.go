package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/pkg/logger"
)

// mailgunClient is the subset of *mailgun.MailgunImpl used by MailgunIntake.
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunIntake emails each lead to the configured recipient.
type MailgunIntake struct {
	client    mailgunClient
	from      string
	recipient string
	renderer  *leadRenderer
	log       *slog.Logger
}

// NewMailgunIntake creates a Mailgun-backed intake.
func NewMailgunIntake(emailCfg config.EmailConfig, recipient string, log *slog.Logger) (*MailgunIntake, error) {
	if !emailCfg.IsConfigured() {
		return nil, fmt.Errorf("mailgun is not configured")
	}
	client := mailgun.NewMailgun(emailCfg.MailgunDomain, emailCfg.MailgunAPIKey)
	if emailCfg.MailgunAPIBase != "" {
		client.SetAPIBase(emailCfg.MailgunAPIBase)
	}
	return newMailgunIntake(client, emailCfg.From(), recipient, log)
}

func newMailgunIntake(client mailgunClient, from, recipient string, log *slog.Logger) (*MailgunIntake, error) {
	renderer, err := newLeadRenderer()
	if err != nil {
		return nil, err
	}
	return &MailgunIntake{
		client:    client,
		from:      from,
		recipient: recipient,
		renderer:  renderer,
		log:       log.With(logger.Scope("contact.mailgun")),
	}, nil
}

func (i *MailgunIntake) Name() string { return "mailgun" }

func (i *MailgunIntake) Submit(ctx context.Context, s Submission) (Receipt, error) {
	lead, err := i.renderer.Render(s)
	if err != nil {
		return Receipt{}, fmt.Errorf("render lead email: %w", err)
	}

	message := i.client.NewMessage(i.from, lead.Subject, lead.Text, i.recipient)
	message.SetHtml(lead.HTML)
	if LooksLikeEmail(s.Contact) {
		message.SetReplyTo(s.Contact)
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, messageID, err := i.client.Send(sendCtx, message)
	if err != nil {
		if status := mailgun.GetStatusFromErr(err); status >= 400 {
			return Receipt{}, &ServerRejection{Intake: i.Name(), Status: status, Reason: err.Error()}
		}
		return Receipt{}, &TransportError{Intake: i.Name(), Err: err}
	}

	i.log.Info("lead email sent",
		slog.String("to", i.recipient),
		slog.String("message_id", messageID),
	)
	return Receipt{ID: messageID, Intake: i.Name(), AcceptedAt: time.Now()}, nil
}
