package email

import (
	"fmt"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (s *SMTPSender) SendVerification(to string, token string) error {
	body := fmt.Sprintf(
		"<p>Welcome to the job board.</p><p>Your verification code: <b>%s</b></p>",
		token,
	)
	return s.Send(to, "Verify your account", body)
}
