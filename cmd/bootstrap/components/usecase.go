package components

import (
	"pupperazi-api/internal/pkg/clock"
	"pupperazi-api/internal/usecase"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

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
		commands.NewLeadCommands,
		commands.NewAppointmentCommands,
		commands.NewEventCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLeadQueries,
		queries.NewAppointmentQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
