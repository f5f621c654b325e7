package components

import (
	sr "roadside-marketplace/internal/domain/servicerequest"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/usecase"
	"roadside-marketplace/internal/usecase/commands"
	"roadside-marketplace/internal/usecase/queries"

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
	fx.Annotate(
		NewCommissionPolicy,
		fx.As(new(sr.CommissionPolicy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerEngine,
		commands.NewLedgerCommands,
		commands.NewMatchingCommands,
		commands.NewLeadCommands,
		commands.NewAreaCommands,
		commands.NewAdminCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRequestQueries,
		queries.NewLedgerQueries,
		queries.NewLeadQueries,
		queries.NewAreaQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCommissionPolicy(cfg config.Config) (*sr.PercentageCommission, error) {
	return sr.NewPercentageCommission(cfg.Marketplace.CommissionPercent)
}
