package bootstrap

import (
	"github.com/dipakpardeshi85-blip/car-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
