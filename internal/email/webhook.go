package email

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cooksapp/cooks/internal/httpx"
)

// WebhookSender implements Notifier by POSTing the message to a delivery
// webhook, for deployments that front email through an HTTP relay instead of
// speaking SMTP directly.
type WebhookSender struct {
	url  string
	http *httpx.HTTP
}

func NewWebhookSender(url string, client *httpx.HTTP) *WebhookSender {
	return &WebhookSender{
		url:  url,
		http: client,
	}
}

type webhookMessage struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

func (s *WebhookSender) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	payload, err := json.Marshal(webhookMessage{
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("marshaling webhook message: %w", err)
	}

	req, err := retryablehttp.NewRequest("POST", s.url, payload)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("delivering webhook message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := httpx.ExpectStatus2xx(resp); err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	return nil
}
