package service

import (
	"fmt"
	"net/smtp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smartrecipes/backend/config"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg   config.SMTPConfig
	caser cases.Caser
}

// NewEmailService creates a new EmailService instance
func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{
		cfg:   cfg,
		caser: cases.Title(language.English),
	}
}

// SendVerificationEmail delivers the registration verification code.
func (s *EmailService) SendVerificationEmail(name, to, code string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("smtp is not configured")
	}

	subject := "Verify your SmartRecipes account"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour SmartRecipes verification code is: %s\r\n\r\nThe code expires shortly, so enter it soon.\r\n\r\nHappy cooking!\r\n",
		s.caser.String(name), code,
	)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.cfg.FromName, s.cfg.From, to, subject, body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
