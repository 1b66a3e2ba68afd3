package smtp

import (
	"log/slog"

	"github.com/go-checkout-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends HTML emails, optionally with file attachments.
type Mailer interface {
	SendEmail(to, subject, htmlBody string, attachments ...string) error
}

type mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *mailer) SendEmail(to, subject, htmlBody string, attachments ...string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	for _, path := range attachments {
		msg.Attach(path)
	}
	return m.dialer.DialAndSend(msg)
}

// LogMailer logs emails instead of sending them. Used when MAIL_DRIVER=log,
// for local development without SMTP credentials.
type LogMailer struct {
	Logger *slog.Logger
}

func (l *LogMailer) SendEmail(to, subject, _ string, attachments ...string) error {
	l.Logger.Info("email (log driver)", "to", to, "subject", subject, "attachments", len(attachments))
	return nil
}
