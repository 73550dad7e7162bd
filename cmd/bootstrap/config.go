package bootstrap

import (
	"pickup-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		splitConfig,
	),
)

// sections exposes the config blocks that constructors take directly.
type sections struct {
	fx.Out

	Graph     config.GraphConfig
	Mail      config.MailConfig
	RateLimit config.RateLimitConfig
	Lock      config.LockConfig
}

func splitConfig(cfg config.Config) sections {
	return sections{
		Graph:     cfg.Graph,
		Mail:      cfg.Mail,
		RateLimit: cfg.RateLimit,
		Lock:      cfg.Lock,
	}
}
