package usecase

import (
	"context"
	"fmt"
	"strings"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/mailer"
)

const contactSubject = "New Contact Form Submission"

type contactUsecase struct {
	mailer    mailer.Mailer
	fromEmail string
}

// NewContactUsecase creates a new contact usecase. fromEmail must be a
// sender identity the provider has verified; arbitrary user addresses are
// rejected by verified-sender policies, so the submitter's email goes into
// Reply-To instead.
func NewContactUsecase(m mailer.Mailer, fromEmail string) domain.ContactUsecase {
	return &contactUsecase{
		mailer:    m,
		fromEmail: fromEmail,
	}
}

// SendContactMessage validates the contact request and relays it as email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (string, error) {
	// Presence only; email syntax is the client's job (see formclient)
	if strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" ||
		strings.TrimSpace(req.To) == "" {
		return "", domain.ErrMissingFields
	}

	id, err := uc.mailer.Send(ctx, buildOutbound(req, uc.fromEmail))
	if err != nil {
		return "", fmt.Errorf("failed to send contact email: %w", err)
	}

	return id, nil
}

// buildOutbound derives the normalized provider message deterministically
// from the submission.
func buildOutbound(req *domain.ContactRequest, from string) mailer.Message {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = "Not provided"
	}

	text := fmt.Sprintf(
		"New message from contact form:\n\nFrom: %s\nPhone: %s\nMessage: %s\n",
		req.Email, phone, req.Message,
	)

	return mailer.Message{
		From:    from,
		To:      []string{req.To},
		Subject: contactSubject,
		Text:    text,
		ReplyTo: req.Email,
	}
}
