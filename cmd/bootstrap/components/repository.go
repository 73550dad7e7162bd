package components

import (
	"log/slog"

	"pickup-scheduler/internal/infra/graph"
	"pickup-scheduler/internal/infra/locktable"
	"pickup-scheduler/internal/infra/repository"
	"pickup-scheduler/internal/pkg/clock"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			func(c *graph.Client) *graph.Client { return c },
			fx.As(new(repository.FileStore)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(shared.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		fx.Annotate(
			NewLockTable,
			fx.As(new(shared.SlotLocker)),
		),
	),
)

func NewLockTable(cfg config.LockConfig, clk clock.Clock, logger *slog.Logger) *locktable.Table {
	return locktable.New(cfg.Timeout, clk, logger.With("component", "locktable"))
}
