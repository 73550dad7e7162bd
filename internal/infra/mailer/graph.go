package mailer

import (
	"context"

	"pickup-scheduler/internal/infra/graph"
	"pickup-scheduler/internal/pkg/config"
)

// GraphMailer is the Microsoft Graph interface the Outlook sender needs.
type GraphMailer interface {
	SendMail(ctx context.Context, msg graph.Mail) error
}

// GraphSender sends from the warehouse Outlook mailbox, copying staff on every message.
type GraphSender struct {
	client GraphMailer
	from   string
	cc     []string
}

func NewGraphSender(client GraphMailer, cfg config.MailConfig) *GraphSender {
	return &GraphSender{
		client: client,
		from:   cfg.Sender,
		cc:     cfg.CC,
	}
}

func (s *GraphSender) Send(ctx context.Context, m Message) error {
	return s.client.SendMail(ctx, graph.Mail{
		From:     s.from,
		To:       []string{m.To},
		CC:       s.cc,
		Subject:  m.Subject,
		HTMLBody: m.HTMLBody,
	})
}
