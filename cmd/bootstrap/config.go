package bootstrap

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
