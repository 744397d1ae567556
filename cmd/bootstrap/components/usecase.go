package components

import (
	"dealvista/internal/pkg/clock"
	"dealvista/internal/usecase"
	"dealvista/internal/usecase/commands"
	"dealvista/internal/usecase/queries"

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
		fx.Annotate(
			commands.NewAuthCommandService,
			fx.As(new(commands.AuthCommands)),
		),
		fx.Annotate(
			commands.NewCouponCommandService,
			fx.As(new(commands.CouponCommands)),
		),
		fx.Annotate(
			commands.NewRedemptionCommandService,
			fx.As(new(commands.RedemptionCommands)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewUserQueryService,
			fx.As(new(queries.UserQueries)),
		),
		fx.Annotate(
			queries.NewCouponQueryService,
			fx.As(new(queries.CouponQueries)),
		),
		fx.Annotate(
			queries.NewActivityQueryService,
			fx.As(new(queries.ActivityQueries)),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
