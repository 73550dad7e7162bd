package bootstrap

import (
	"pickup-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	JWTModule,
	components.RepositoryModule,
	components.MailerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
