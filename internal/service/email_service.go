package service

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/TrendySloth1001/tutorix-sub002/internal/config"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// EmailService defines the interface for outbound fee reminder mail
type EmailService interface {
	SendFeeReminder(toEmail, toName, centerName string, lines []string, totalDue float64) error
}

// NewEmailService creates a new instance of EmailService. Without a SendGrid
// API key reminders are written to the log instead of sent.
func NewEmailService(cfg config.MailConfig, logger *logger.Logger) EmailService {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SendGrid API key not configured, fee reminders will be logged only")
		return &consoleEmailService{
			logger: logger,
		}
	}

	return &sendgridEmailService{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// sendgridEmailService implements EmailService via the SendGrid API
type sendgridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logger.Logger
}

// SendFeeReminder sends one reminder email listing the outstanding fees
func (s *sendgridEmailService) SendFeeReminder(toEmail, toName, centerName string, lines []string, totalDue float64) error {
	if toEmail == "" {
		return fmt.Errorf("recipient email is empty")
	}

	subject := fmt.Sprintf("Fee payment reminder from %s", centerName)
	plain := reminderBody(toName, centerName, lines, totalDue)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	resp, err := s.client.Send(message)
	if err != nil {
		s.logger.WithError(err).WithField("to", toEmail).Error("Failed to send fee reminder")
		return fmt.Errorf("failed to send fee reminder: %w", err)
	}
	if resp.StatusCode >= 400 {
		s.logger.WithFields(map[string]interface{}{
			"to":          toEmail,
			"status_code": resp.StatusCode,
			"body":        resp.Body,
		}).Error("SendGrid rejected fee reminder")
		return fmt.Errorf("sendgrid rejected fee reminder: status %d", resp.StatusCode)
	}

	s.logger.WithFields(map[string]interface{}{
		"to":        toEmail,
		"fee_count": len(lines),
	}).Info("Fee reminder sent successfully")

	return nil
}

// consoleEmailService implements EmailService by logging the reminder,
// used in local development
type consoleEmailService struct {
	logger *logger.Logger
}

// SendFeeReminder logs the reminder instead of sending it
func (s *consoleEmailService) SendFeeReminder(toEmail, toName, centerName string, lines []string, totalDue float64) error {
	if toEmail == "" {
		return fmt.Errorf("recipient email is empty")
	}

	s.logger.WithFields(map[string]interface{}{
		"to":        toEmail,
		"name":      toName,
		"total_due": totalDue,
	}).Info("Fee reminder (console):\n" + reminderBody(toName, centerName, lines, totalDue))

	return nil
}

// reminderBody renders the plain-text reminder shared by both senders
func reminderBody(toName, centerName string, lines []string, totalDue float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", toName)
	fmt.Fprintf(&b, "The following fees at %s are awaiting payment:\n\n", centerName)
	for _, line := range lines {
		fmt.Fprintf(&b, "  - %s\n", line)
	}
	fmt.Fprintf(&b, "\nTotal due: %.2f\n\n", totalDue)
	b.WriteString("Please settle the outstanding amount at your earliest convenience.\n")

	return b.String()
}
