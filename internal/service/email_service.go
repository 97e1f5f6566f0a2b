package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService отправляет транзакционные письма участникам
type EmailService interface {
	SendWelcome(ctx context.Context, toEmail, username string) error
	SendCampaignComplete(ctx context.Context, toEmail, username string) error
}

// NoopEmailService используется, когда отправка писем выключена
type NoopEmailService struct{}

func (s *NoopEmailService) SendWelcome(ctx context.Context, toEmail, username string) error {
	log.Printf("[EmailService] noop send welcome to=%s", toEmail)
	return nil
}

func (s *NoopEmailService) SendCampaignComplete(ctx context.Context, toEmail, username string) error {
	log.Printf("[EmailService] noop send campaign-complete to=%s", toEmail)
	return nil
}

// ResendEmailService отправляет письма через Resend REST API
type ResendEmailService struct {
	from   string
	client *resend.Client
}

// NewResendEmailService создает сервис отправки писем через Resend
func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendWelcome отправляет приветственное письмо после регистрации
func (s *ResendEmailService) SendWelcome(ctx context.Context, toEmail, username string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Welcome to the treasure hunt",
		Text:    fmt.Sprintf("Hi %s! The hunt is on: a new riddle unlocks every day. Good luck!", username),
		Html:    fmt.Sprintf("<p>Hi <strong>%s</strong>!</p><p>The hunt is on: a new riddle unlocks every day. Good luck!</p>", username),
	}
	return s.send(ctx, params)
}

// SendCampaignComplete отправляет поздравление с решением последнего дня
func (s *ResendEmailService) SendCampaignComplete(ctx context.Context, toEmail, username string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "You finished the hunt!",
		Text:    fmt.Sprintf("Congratulations %s, you solved the final riddle of the campaign!", username),
		Html:    fmt.Sprintf("<p>Congratulations <strong>%s</strong>, you solved the final riddle of the campaign!</p>", username),
	}
	return s.send(ctx, params)
}

// send выполняет до трёх попыток отправки с паузой между ними
func (s *ResendEmailService) send(ctx context.Context, params *resend.SendEmailRequest) error {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithContext(ctx, params)
		if err == nil {
			return nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * time.Second):
		}
	}
	return fmt.Errorf("failed to send email after retries: %w", lastErr)
}
