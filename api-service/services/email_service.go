package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"marigold-backend/shared/config"
	"marigold-backend/shared/database/models"
)

// EmailService sends transactional email over SMTP
type EmailService struct {
	config *config.Config
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{config: cfg}
}

// SendContactFormEmails notifies the site owner and thanks the submitter.
// Called fire-and-forget after a contact is persisted; failures are logged
// and never surfaced to the submitting client.
func (es *EmailService) SendContactFormEmails(contact models.Contact) {
	if es.config.SMTPHost == "" {
		log.Println("Warning: SMTP not configured, skipping contact form emails")
		return
	}

	if es.config.ContactNotifyEmail != "" {
		subject := fmt.Sprintf("New %s inquiry from %s", contact.EventType, contact.Name)
		body := fmt.Sprintf(
			"New contact form submission:\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\nEvent type: %s\r\n\r\nMessage:\r\n%s\r\n",
			contact.Name, contact.Email, contact.Phone, contact.EventType, contact.Message,
		)
		if err := es.send([]string{es.config.ContactNotifyEmail}, subject, body); err != nil {
			log.Printf("❌ Admin notification email failed: %v", err)
		}
	}

	thankYouBody := fmt.Sprintf(
		"Hi %s,\r\n\r\nThank you for reaching out to %s. We received your inquiry and will get back to you within one business day.\r\n\r\n%s\r\n",
		contact.Name, es.config.EmailFromName, es.config.EmailFromName,
	)
	if err := es.send([]string{contact.Email}, "We received your inquiry", thankYouBody); err != nil {
		log.Printf("❌ Thank you email failed: %v", err)
	}
}

// send delivers a single plain-text email via SMTP
func (es *EmailService) send(to []string, subject, body string) error {
	host := es.config.SMTPHost
	port := es.config.SMTPPort
	username := es.config.SMTPUsername
	password := es.config.SMTPPassword
	from := es.config.EmailFrom

	if host == "" || username == "" || password == "" {
		return fmt.Errorf("SMTP configuration is incomplete")
	}

	message := es.buildEmailMessage(from, to, subject, body)

	auth := smtp.PlainAuth("", username, password, host)
	addr := fmt.Sprintf("%s:%s", host, port)

	if err := smtp.SendMail(addr, auth, from, to, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent successfully to %v", to)
	return nil
}

// buildEmailMessage composes RFC 822 headers and body
func (es *EmailService) buildEmailMessage(from string, to []string, subject, body string) string {
	var message strings.Builder

	message.WriteString(fmt.Sprintf("From: %s <%s>\r\n", es.config.EmailFromName, from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	return message.String()
}
