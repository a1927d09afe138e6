package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"

	"gonotes/internal/models"
)

// SMTP implements models.Mailer over a plain-auth SMTP relay.
type SMTP struct {
	server   string // host:port
	user     string
	password string
}

// NewSMTP validates the relay credentials and returns a mailer.
func NewSMTP(server, user, password string) (*SMTP, error) {
	if server == "" || user == "" || password == "" {
		return nil, errors.New("smtp credentials are not configured")
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		return nil, fmt.Errorf("invalid smtp server (expected host:port): %w", err)
	}
	return &SMTP{server: server, user: user, password: password}, nil
}

// Send delivers a single message. One attempt, no retries.
func (s *SMTP) Send(_ context.Context, to, subject, body string) error {
	host, _, _ := net.SplitHostPort(s.server)
	auth := smtp.PlainAuth("", s.user, s.password, host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(s.server, auth, s.user, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", s.server, err)
	}
	return nil
}

var _ models.Mailer = (*SMTP)(nil)
