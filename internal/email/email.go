// Package email provides the notifier used for verification messages.
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
)

// Notifier delivers a message to a recipient. Delivery may fail transiently;
// callers decide whether that failure matters.
type Notifier interface {
	Send(to []string, subject, body string) error
}

// Config holds the SMTP configuration.
// TLS is automatically determined based on the port:
// - Port 587 or 465: TLS enabled.
// - Other ports: TLS disabled.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender implements Notifier over SMTP.
type SMTPSender struct {
	config Config
}

func NewSMTPSender(config Config) *SMTPSender {
	return &SMTPSender{
		config: config,
	}
}

// Send sends an email to the specified recipients.
func (s *SMTPSender) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	message := s.buildMessage(to, subject, body)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.Port == 587 || s.config.Port == 465 {
		return s.sendWithTLS(addr, auth, to, message)
	}

	return smtp.SendMail(addr, auth, s.config.From, to, message)
}

func (s *SMTPSender) buildMessage(to []string, subject, body string) []byte {
	headers := make(map[string]string)
	headers["From"] = s.config.From
	headers["To"] = to[0]
	for i := 1; i < len(to); i++ {
		headers["To"] += ", " + to[i]
	}
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n" + body

	return []byte(message)
}

func (s *SMTPSender) sendWithTLS(addr string, auth smtp.Auth, to []string, message []byte) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
		MinVersion: tls.VersionTLS12,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = writer.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
