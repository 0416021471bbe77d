// Package mail is the outbound-email collaborator boundary. Delivery
// reliability is out of scope; callers treat a send failure as non-fatal.
package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"workwise/internal/config"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	host string
	port string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		auth: auth,
		from: cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m == nil || m.host == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, m.auth, m.from, []string{to}, []byte(msg))
}

// LogMailer logs instead of sending; used when SMTP is not configured so
// the rest of the system keeps working, the same way the Redis cache is
// bypassed when unavailable.
type LogMailer struct {
	Logger *log.Logger
}

func (m LogMailer) Send(to, subject, body string) error {
	if m.Logger != nil {
		m.Logger.Printf("mail (not sent) | to=%s subject=%q", to, subject)
	}
	return nil
}

// New picks the SMTP mailer when configured, the log fallback otherwise.
func New(cfg config.MailConfig, logger *log.Logger) Mailer {
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		if logger != nil {
			logger.Printf("[Mail] SMTP not configured, emails will be logged only")
		}
		return LogMailer{Logger: logger}
	}
	return NewSMTPMailer(cfg)
}
