package mailer

import (
	"context"
	"log/slog"
)

// LogSender records messages instead of sending them; used when no mail provider is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, m Message) error {
	s.logger.Info("mail delivery disabled, message dropped", "to", m.To, "subject", m.Subject)
	return nil
}
