package components

import (
	"log/slog"
	"strings"

	"pickup-scheduler/internal/infra/graph"
	"pickup-scheduler/internal/infra/mailer"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailSender,
		fx.Annotate(
			mailer.NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

// NewMailSender picks the delivery backend named by MAIL_PROVIDER.
func NewMailSender(cfg config.MailConfig, client *graph.Client, logger *slog.Logger) mailer.Sender {
	switch strings.ToLower(cfg.Provider) {
	case "graph":
		if cfg.Sender == "" {
			logger.Warn("OUTLOOK_SENDER_EMAIL not set, email delivery disabled")
			return mailer.NewLogSender(logger)
		}
		return mailer.NewGraphSender(client, cfg)
	case "mailersend":
		if cfg.MailerSendAPIKey == "" {
			logger.Warn("MAILERSEND_API_KEY not set, email delivery disabled")
			return mailer.NewLogSender(logger)
		}
		return mailer.NewMailerSendSender(cfg, logger)
	default:
		logger.Info("email delivery disabled", "provider", cfg.Provider)
		return mailer.NewLogSender(logger)
	}
}
