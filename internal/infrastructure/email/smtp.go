package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/egest-app/egest/internal/shared/config"
)

// ErrEmailServiceNotConfigured is returned when no SMTP host is set.
var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	fromAddress string
	fromName    string
	sender      messageSender
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	var sender messageSender
	if cfg.SMTPHost != "" {
		sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return &SMTPMailer{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		sender:      sender,
	}
}

// Send delivers one message to all recipients. textBody is the plain-text
// alternative of htmlBody.
func (s *SMTPMailer) Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error {
	if s.sender == nil {
		return ErrEmailServiceNotConfigured
	}
	if len(to) == 0 {
		return errors.New("at least one recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.fromAddress, s.fromName)
	} else {
		m.SetHeader("From", s.fromAddress)
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", strings.Join(to, ", "), err)
	}
	return nil
}
