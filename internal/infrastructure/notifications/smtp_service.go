package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// SMTPServiceImpl implements domain.Mailer over an SMTP relay
type SMTPServiceImpl struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPService creates a new SMTP mailer
func NewSMTPService(host string, port int, username, password string) domain.Mailer {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send implements domain.Mailer
func (s *SMTPServiceImpl) Send(from, to, subject, body string) error {
	// If the relay is not configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
