package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"taskletix.app/intake/internal/queue"
)

// LogNotifier records each new submission as a structured log line. It is
// the default when no webhook is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, msg queue.Message) error {
	slog.InfoContext(ctx, "new contact submission",
		"email", msg.Email,
		"project_type", msg.ProjectType,
		"attempt", msg.Attempt)
	return nil
}

// WebhookNotifier posts a chat-style {"text": ...} payload, the format
// accepted by Slack and most chat incoming webhooks.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, msg queue.Message) error {
	body, err := json.Marshal(webhookPayload{Text: NotificationText(msg)})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

// NotificationText is the one-line summary sent for a submission.
func NotificationText(msg queue.Message) string {
	projectType := msg.ProjectType
	if projectType == "" {
		projectType = "unspecified project"
	}
	return fmt.Sprintf("New contact submission #%d: %s from %s", msg.SubmissionID, projectType, msg.Email)
}
