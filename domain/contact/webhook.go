package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/pkg/logger"
)

// webhookPayload is the JSON body posted to the CRM endpoint.
type webhookPayload struct {
	Source           string    `json:"source"`
	Name             string    `json:"name"`
	Contact          string    `json:"contact"`
	ProjectType      string    `json:"projectType"`
	ProjectTypeLabel string    `json:"projectTypeLabel"`
	Budget           string    `json:"budget"`
	BudgetLabel      string    `json:"budgetLabel"`
	Description      string    `json:"description"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

type webhookResponse struct {
	ID string `json:"id"`
}

// WebhookIntake posts each lead to a CRM webhook.
type WebhookIntake struct {
	client *resty.Client
	url    string
	log    *slog.Logger
}

// NewWebhookIntake creates a webhook intake from config.
func NewWebhookIntake(cfg config.WebhookConfig, log *slog.Logger) (*WebhookIntake, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("webhook url is not configured")
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "shangtu-web")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &WebhookIntake{
		client: client,
		url:    cfg.URL,
		log:    log.With(logger.Scope("contact.webhook")),
	}, nil
}

func (i *WebhookIntake) Name() string { return "webhook" }

func (i *WebhookIntake) Submit(ctx context.Context, s Submission) (Receipt, error) {
	payload := webhookPayload{
		Source:           "website",
		Name:             s.Name,
		Contact:          s.Contact,
		ProjectType:      s.ProjectType,
		ProjectTypeLabel: catalog.OptionLabel(catalog.ProjectTypes(), s.ProjectType),
		Budget:           s.Budget,
		BudgetLabel:      catalog.OptionLabel(catalog.Budgets(), s.Budget),
		Description:      s.Description,
		SubmittedAt:      s.SubmittedAt,
	}

	var out webhookResponse
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&out).
		Post(i.url)
	if err != nil {
		return Receipt{}, &TransportError{Intake: i.Name(), Err: err}
	}
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return Receipt{}, &ServerRejection{
			Intake: i.Name(),
			Status: resp.StatusCode(),
			Reason: truncate(resp.String(), 200),
		}
	}

	id := out.ID
	if id == "" {
		id = uuid.NewString()
	}
	i.log.Info("lead posted to webhook",
		slog.String("receipt_id", id),
		slog.Int("status", resp.StatusCode()),
	)
	return Receipt{ID: id, Intake: i.Name(), AcceptedAt: time.Now()}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
