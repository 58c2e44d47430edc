package components

import (
	"airtime/internal/pkg/clock"
	"airtime/internal/usecase"
	"airtime/internal/usecase/commands"
	"airtime/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewAdContentUseCase,
		commands.NewSlotUseCase,
		commands.NewStationUseCase,
		commands.NewRJUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewSlotQueries,
		queries.NewStationQueries,
		queries.NewRJQueries,
		queries.NewAdContentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
