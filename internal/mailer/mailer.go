// Package mailer sends transactional email.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/opostest/backend/config"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var ErrNoRecipients = errors.New("message has no recipients")

// NewSender returns an SMTP sender, or a log-only sender when no host is configured.
func NewSender(cfg *config.Config) (Sender, error) {
	if cfg.Mail.Host == "" {
		log.Warn().Msg("EMAIL_HOST is not set, outgoing mail will only be logged")
		return LogSender{}, nil
	}

	opts := []mail.Option{mail.WithPort(cfg.Mail.Port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Mail.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Mail.Username),
			mail.WithPassword(cfg.Mail.Password),
		)
	}
	client, err := mail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPSender{client: client, from: cfg.Mail.From}, nil
}

type SMTPSender struct {
	client *mail.Client
	from   string
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", s.from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		log.Error().Err(err).Strs("to", msg.To).Str("subject", msg.Subject).Msg("SMTP delivery failed")
		return fmt.Errorf("send mail: %w", err)
	}
	log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("Mail sent")
	return nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Str("body", msg.Body).Msg("Mail (not delivered)")
	return nil
}
