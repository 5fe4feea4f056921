package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendRegistrationApproved(to, internName string) error
	SendRegistrationRejected(to, internName string) error
	SendCertificateIssued(to, internName, serialNumber string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type registrationEmailData struct {
	InternName string
}

// SendRegistrationApproved notifies an intern their account was approved
func (s *emailServiceImpl) SendRegistrationApproved(to, internName string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "registration_approved.html", registrationEmailData{InternName: internName}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your internship account has been approved", body.String())
}

// SendRegistrationRejected notifies an intern their registration was declined
func (s *emailServiceImpl) SendRegistrationRejected(to, internName string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "registration_rejected.html", registrationEmailData{InternName: internName}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your internship registration", body.String())
}

type certificateEmailData struct {
	InternName   string
	SerialNumber string
}

// SendCertificateIssued notifies an intern their completion certificate is ready
func (s *emailServiceImpl) SendCertificateIssued(to, internName, serialNumber string) error {
	data := certificateEmailData{
		InternName:   internName,
		SerialNumber: serialNumber,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "certificate_issued.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your certificate of completion", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Warn("Failed to send email", "to", to, "subject", subject, "attempt", attempt, "error", err)
		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
