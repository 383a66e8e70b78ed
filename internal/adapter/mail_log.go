package adapter

import (
	"context"

	"github.com/MKhiriev/go-story-nook/internal/logger"
)

// logMailSender stands in for a real provider in development. Bodies carry
// reset links, so only the recipient and subject are logged.
type logMailSender struct {
	logger *logger.Logger
}

func NewLogMailSender(log *logger.Logger) MailSender {
	return &logMailSender{logger: log}
}

func (l *logMailSender) SendMail(ctx context.Context, to, subject, _ string) error {
	l.logger.Info().
		Str("func", "*logMailSender.SendMail").
		Str("to", to).
		Str("subject", subject).
		Msg("mail provider not configured, mail not sent")
	return nil
}
