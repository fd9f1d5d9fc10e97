package email

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cooksapp/cooks/internal/httpx"
)

func TestNewSMTPSender(t *testing.T) {
	config := Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user@example.com",
		Password: "password",
		From:     "sender@example.com",
	}

	sender := NewSMTPSender(config)
	if sender == nil {
		t.Fatal("expected sender to be created, got nil")
	}

	if sender.config.Host != config.Host {
		t.Errorf("expected host %s, got %s", config.Host, sender.config.Host)
	}
	if sender.config.Port != config.Port {
		t.Errorf("expected port %d, got %d", config.Port, sender.config.Port)
	}
}

func TestBuildMessage(t *testing.T) {
	sender := &SMTPSender{
		config: Config{
			From: "sender@example.com",
		},
	}

	tests := []struct {
		name        string
		to          []string
		subject     string
		body        string
		wantTo      string
		wantSubject string
	}{
		{
			name:        "single recipient",
			to:          []string{"recipient@example.com"},
			subject:     "Test Subject",
			body:        "Test Body",
			wantTo:      "recipient@example.com",
			wantSubject: "Test Subject",
		},
		{
			name:        "multiple recipients",
			to:          []string{"recipient1@example.com", "recipient2@example.com"},
			subject:     "Test Subject",
			body:        "Test Body",
			wantTo:      "recipient1@example.com, recipient2@example.com",
			wantSubject: "Test Subject",
		},
		{
			name:        "html body",
			to:          []string{"recipient@example.com"},
			subject:     "HTML Email",
			body:        "<h1>Hello</h1><p>This is HTML</p>",
			wantTo:      "recipient@example.com",
			wantSubject: "HTML Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := string(sender.buildMessage(tt.to, tt.subject, tt.body))

			if !strings.Contains(message, "From: sender@example.com") {
				t.Errorf("expected From header, got message: %s", message)
			}
			if !strings.Contains(message, "To: "+tt.wantTo) {
				t.Errorf("expected To header '%s', got message: %s", tt.wantTo, message)
			}
			if !strings.Contains(message, "Subject: "+tt.wantSubject) {
				t.Errorf("expected Subject header '%s', got message: %s", tt.wantSubject, message)
			}
			if !strings.Contains(message, tt.body) {
				t.Errorf("expected body '%s' in message, got: %s", tt.body, message)
			}
			if !strings.Contains(message, "MIME-Version: 1.0") {
				t.Error("expected MIME-Version header")
			}
			if !strings.Contains(message, "Content-Type: text/html; charset=UTF-8") {
				t.Error("expected Content-Type header for HTML")
			}
		})
	}
}

func TestSend_NoRecipients(t *testing.T) {
	sender := NewSMTPSender(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "sender@example.com",
	})

	err := sender.Send([]string{}, "Test", "Body")
	if err == nil {
		t.Error("expected error when no recipients provided, got nil")
	}
	if !strings.Contains(err.Error(), "no recipients") {
		t.Errorf("expected 'no recipients' error, got: %v", err)
	}
}

func TestVerificationMessage(t *testing.T) {
	subject, body := VerificationMessage("https://cooks.example.com", "1$abc123")

	if subject == "" {
		t.Error("expected non-empty subject")
	}
	if !strings.Contains(body, "https://cooks.example.com/email-verify/?token=1$abc123") {
		t.Errorf("expected verification link in body, got: %s", body)
	}
}

func TestWebhookSender(t *testing.T) {
	var received webhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() { _ = r.Body.Close() }()
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &received); err != nil {
			t.Errorf("failed to decode webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpx.DefaultConfig()
	client.Logger = nil
	sender := NewWebhookSender(server.URL, httpx.New(client))

	err := sender.Send([]string{"cook@example.com"}, "Verify", "<p>link</p>")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if len(received.To) != 1 || received.To[0] != "cook@example.com" {
		t.Errorf("to = %v, want [cook@example.com]", received.To)
	}
	if received.Subject != "Verify" {
		t.Errorf("subject = %q, want %q", received.Subject, "Verify")
	}
}

func TestWebhookSender_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := httpx.DefaultConfig()
	client.Logger = nil
	client.RetryMax = 0
	sender := NewWebhookSender(server.URL, httpx.New(client))

	if err := sender.Send([]string{"cook@example.com"}, "Verify", "body"); err == nil {
		t.Error("expected error for non-2xx response, got nil")
	}
}
