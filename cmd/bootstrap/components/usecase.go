package components

import (
	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/pkg/clock"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/pkg/jwt"
	"pickup-scheduler/internal/usecase"
	"pickup-scheduler/internal/usecase/commands"
	"pickup-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCalendar,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config, jwtService *jwt.Service) (commands.AuthCommands, error) {
			return commands.NewAuthCommands(cfg.Admin.Password, jwtService)
		},
		commands.NewBookingCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCalendar(cfg config.Config) (slot.Calendar, error) {
	cal := slot.Calendar{
		Granularity: cfg.Slots.Granularity,
		StartHour:   cfg.Slots.StartHour,
		EndHour:     cfg.Slots.EndHour,
		DaysAhead:   cfg.Slots.DaysAhead,
		Location:    cfg.Slots.SlotLocation(),
	}
	if err := cal.Validate(); err != nil {
		return slot.Calendar{}, err
	}
	return cal, nil
}
