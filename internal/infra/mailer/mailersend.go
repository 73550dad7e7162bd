package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"pickup-scheduler/internal/pkg/config"

	"github.com/mailersend/mailersend-go"
)

// MailerSendSender delivers through the MailerSend API.
type MailerSendSender struct {
	client *mailersend.Mailersend
	from   mailersend.From
	cc     []string
	logger *slog.Logger
}

func NewMailerSendSender(cfg config.MailConfig, logger *slog.Logger) *MailerSendSender {
	return &MailerSendSender{
		client: mailersend.NewMailersend(cfg.MailerSendAPIKey),
		from: mailersend.From{
			Name:  cfg.SenderName,
			Email: cfg.Sender,
		},
		cc:     cfg.CC,
		logger: logger,
	}
}

func (s *MailerSendSender) Send(ctx context.Context, m Message) error {
	message := s.client.Email.NewMessage()
	message.SetFrom(s.from)
	message.SetRecipients([]mailersend.Recipient{{Email: m.To}})
	if len(s.cc) > 0 {
		cc := make([]mailersend.Recipient, 0, len(s.cc))
		for _, addr := range s.cc {
			cc = append(cc, mailersend.Recipient{Email: addr})
		}
		message.SetCc(cc)
	}
	message.SetSubject(m.Subject)
	message.SetHTML(m.HTMLBody)

	res, err := s.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Debug("mailersend accepted message", "message_id", res.Header.Get("X-Message-Id"))
	return nil
}
