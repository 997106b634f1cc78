// services/mail_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/agrisure/agrisure_backend/config"
)

// MailService delivers OTP messages over SMTP. An unconfigured SMTP
// environment is a supported state: the server then runs in dev mode and
// codes are only written to the log.
type MailService struct {
	cfg config.SMTPConfig
}

// NewMailService creates a mail service from the given SMTP settings.
func NewMailService(cfg config.SMTPConfig) *MailService {
	return &MailService{cfg: cfg}
}

// Enabled reports whether real mail delivery is configured.
func (s *MailService) Enabled() bool {
	return s.cfg.IsConfigured()
}

// SendOTP sends the verification code to the given address.
func (s *MailService) SendOTP(email, otp, role string) error {
	subject := "Your AgriSure verification code"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Verify Your Email</h2>
			<p>Hello,</p>
			<p>Use the following code to verify your email for your %s account:</p>
			<h3 style="background-color: #f0f0f0; padding: 10px; font-size: 24px; letter-spacing: 5px; text-align: center;">%s</h3>
			<p>If you did not request this code, please ignore this email.</p>
			<p>Thank you,<br>The AgriSure Team</p>
		</body>
		</html>
	`, role, otp)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
