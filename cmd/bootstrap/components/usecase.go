package components

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/clock"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

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
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)
