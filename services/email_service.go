package services

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/shawaizdev/portfolio-api/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService creates a new email service instance
func NewEmailService(getEnv *config.EnviornmentVariable) *EmailService {
	host := getEnv.SMTP_HOST
	if host == "" {
		host = "smtp.gmail.com"
	}

	from := getEnv.SMTP_FROM
	if from == "" {
		from = getEnv.SMTP_USERNAME
	}

	return &EmailService{
		host:     host,
		port:     getEnv.SMTP_PORT,
		username: getEnv.SMTP_USERNAME,
		password: getEnv.SMTP_PASSWORD,
		from:     from,
	}
}

// IsConfigured checks if SMTP is properly configured
func (e *EmailService) IsConfigured() bool {
	return e.username != "" && e.password != ""
}

// SendContactNotification notifies the configured contact address about a new
// contact form submission
func (e *EmailService) SendContactNotification(toEmail, name, fromEmail, subject, message string) error {
	if !e.IsConfigured() {
		return fmt.Errorf("SMTP not configured")
	}

	if subject == "" {
		subject = "New Message"
	}

	body := fmt.Sprintf("Name: %s\r\nEmail: %s\r\nSubject: %s\r\n\r\nMessage:\r\n%s\r\n",
		name, fromEmail, subject, message)

	return e.sendEmail(toEmail, "Portfolio Contact: "+subject, body)
}

// sendEmail sends an email using SMTP with TLS
func (e *EmailService) sendEmail(to, subject, body string) error {
	headers := make(map[string]string)
	headers["From"] = e.from
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/plain; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)

	tlsConfig := &tls.Config{
		ServerName: e.host,
	}

	conn, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if err := conn.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if err := conn.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := conn.Mail(e.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	conn.Quit()

	log.Printf("Contact notification sent to: %s", to)
	return nil
}
