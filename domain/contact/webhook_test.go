package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutian475-collab/wutian111/internal/config"
)

func newWebhook(t *testing.T, url string, timeout time.Duration) *WebhookIntake {
	t.Helper()
	intake, err := NewWebhookIntake(config.WebhookConfig{URL: url, Token: "secret", Timeout: timeout}, slog.Default())
	require.NoError(t, err)
	return intake
}

func TestWebhookIntake_Accepted(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"lead-42"}`))
	}))
	defer srv.Close()

	r, err := newWebhook(t, srv.URL, time.Second).Submit(context.Background(), sampleSubmission())

	require.NoError(t, err)
	assert.Equal(t, "lead-42", r.ID)
	assert.Equal(t, "webhook", r.Intake)
	assert.Equal(t, "website", got.Source)
	assert.Equal(t, "张三", got.Name)
	assert.Equal(t, "AI 智能体开发", got.ProjectTypeLabel)
}

func TestWebhookIntake_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate lead", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newWebhook(t, srv.URL, time.Second).Submit(context.Background(), sampleSubmission())

	var rej *ServerRejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusUnprocessableEntity, rej.Status)
	assert.Contains(t, rej.Reason, "duplicate lead")
}

func TestWebhookIntake_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newWebhook(t, srv.URL, 50*time.Millisecond).Submit(context.Background(), sampleSubmission())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, FailureTransport, Classify(err))
}

func TestNewWebhookIntake_RequiresURL(t *testing.T) {
	_, err := NewWebhookIntake(config.WebhookConfig{}, slog.Default())
	assert.Error(t, err)
}
