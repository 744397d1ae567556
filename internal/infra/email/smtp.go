package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"dealvista/internal/pkg/config"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/report"
)

// NewSender returns an SMTP-backed sender, or a logging stub when no SMTP
// host is configured so local environments never try to connect anywhere.
func NewSender(cfg config.ReportConfig) report.EmailSender {
	if cfg.SMTPHost == "" {
		return &logSender{}
	}
	return &smtpSender{cfg: cfg}
}

type smtpSender struct {
	cfg config.ReportConfig
}

func (s *smtpSender) Send(_ context.Context, to []string, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, to, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

type logSender struct{}

func (s *logSender) Send(_ context.Context, to []string, subject, _ string) error {
	slog.Info("mail delivery disabled, logging instead", "to", to, "subject", subject)
	return nil
}
