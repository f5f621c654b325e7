package bootstrap

import (
	"roadside-marketplace/cmd/bootstrap/components"
	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Module is the whole application graph. E2E tests assemble the same
// modules around their own config.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
