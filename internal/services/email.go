package services

import (
	"context"
	"fmt"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/platform/sendgrid"
)

// EmailService dispatches transactional mail. Signup treats delivery as
// best effort, so callers log failures instead of surfacing them.
type EmailService interface {
	SendVerificationEmail(ctx context.Context, toEmail, verificationToken string) error
}

type emailService struct {
	log     *logger.Logger
	client  sendgrid.Client
	baseURL string
}

func NewEmailService(log *logger.Logger, client sendgrid.Client, baseURL string) EmailService {
	serviceLog := log.With("service", "EmailService")
	return &emailService{log: serviceLog, client: client, baseURL: baseURL}
}

func (es *emailService) SendVerificationEmail(ctx context.Context, toEmail, verificationToken string) error {
	if es.client == nil {
		return fmt.Errorf("mailer not configured")
	}

	link := fmt.Sprintf("%s/users/verify/%s", es.baseURL, verificationToken)
	_, err := es.client.Send(ctx, sendgrid.SendEmailRequest{
		To:      []sendgrid.EmailAddress{{Email: toEmail}},
		Subject: "Verify your email",
		Text:    fmt.Sprintf("Hello, confirm your email address by clicking this link: %s", link),
	})
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
