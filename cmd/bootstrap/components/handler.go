package components

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler"
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/api"
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
