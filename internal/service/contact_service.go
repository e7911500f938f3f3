package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/mailer"
	"github.com/rs/zerolog/log"
)

type ContactService interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}

type contactService struct {
	mail  mailer.Sender
	inbox string
}

func NewContactService(cfg *config.Config, mail mailer.Sender) ContactService {
	return &contactService{mail: mail, inbox: cfg.Mail.ContactInbox}
}

func (s *contactService) Send(ctx context.Context, req dto.ContactRequest) error {
	if s.inbox == "" {
		return newError(ErrIntegration, "the contact form is not configured")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Nombre: %s\n", req.Name)
	fmt.Fprintf(&body, "Email: %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&body, "Teléfono: %s\n", req.Phone)
	}
	fmt.Fprintf(&body, "\n%s\n", req.Message)

	err := s.mail.Send(ctx, mailer.Message{
		To:      []string{s.inbox},
		ReplyTo: req.Email,
		Subject: "[Contacto] " + req.Subject,
		Body:    body.String(),
	})
	if err != nil {
		log.Error().Err(err).Str("from", req.Email).Msg("Contact: sending message failed")
		return newError(ErrIntegration, "the message could not be sent, try again later")
	}
	log.Info().Str("from", req.Email).Msg("Contact message sent")
	return nil
}
