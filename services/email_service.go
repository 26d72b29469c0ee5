package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"alexweb-api/config"
	"alexweb-api/models"
)

// EmailService forwards contact-form submissions to the dealership
// inbox. It is a best-effort courtesy: delivery failures are reported
// to the caller for logging but never fail the intake request.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// Enabled reports whether SMTP is configured at all.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != "" && es.config.ContactRecipient != ""
}

// SendContactNotification emails the stored contact message to the
// configured recipient.
func (es *EmailService) SendContactNotification(msg *models.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.ContactRecipient)
	m.SetHeader("Subject", fmt.Sprintf("New contact message: %s", msg.Subject))
	m.SetHeader("Reply-To", msg.Email)

	phone := "not provided"
	if msg.Phone != nil {
		phone = *msg.Phone
	}
	body := fmt.Sprintf(
		"From: %s <%s>\nPhone: %s\nSubject: %s\n\n%s\n",
		msg.Name, msg.Email, phone, msg.Subject, msg.Message,
	)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}
