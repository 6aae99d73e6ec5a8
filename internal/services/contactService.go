package services

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"gxprime/internal/metrics"
	"gxprime/internal/models"
)

type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) error
}

// ErrInvalidContactRequest marks a submission rejected by validation, as
// opposed to a relay failure.
type ErrInvalidContactRequest struct {
	Reason string
}

func (e *ErrInvalidContactRequest) Error() string {
	return "invalid contact request: " + e.Reason
}

type contactServiceImpl struct {
	email EmailService
	to    string
}

func NewContactService(email EmailService) ContactService {
	to := os.Getenv("CONTACT_TO")
	if to == "" {
		to = os.Getenv("SMTP_USERNAME")
	}
	return &contactServiceImpl{email: email, to: to}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return &ErrInvalidContactRequest{Reason: "name, email and message are required"}
	}
	if !strings.Contains(req.Email, "@") {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return &ErrInvalidContactRequest{Reason: "email address is malformed"}
	}

	subject := fmt.Sprintf("お問い合わせ: %s", req.Name)
	body := fmt.Sprintf(
		"<p><b>Name:</b> %s</p><p><b>Company:</b> %s</p><p><b>Email:</b> %s</p><p><b>Message:</b><br>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Company),
		html.EscapeString(req.Email),
		strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"),
	)

	if err := s.email.SendEmail(s.to, subject, body); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to relay contact submission")
		return fmt.Errorf("failed to relay contact submission: %w", err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	log.Info().Str("email", req.Email).Msg("Contact submission relayed")
	return nil
}
