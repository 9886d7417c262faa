package components

import (
	"bookit/internal/pkg/clock"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewExperienceQueries,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewPromoQueries,
	),
)
