package components

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/cache"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/readstore"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/uow"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Car
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarViewStore)),
			fx.As(new(queries.CarSnapshotStore)),
		),
		// Location
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationViewStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewStore)),
			fx.As(new(commands.UserReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			func(c *cache.CatalogCache) *cache.CatalogCache { return c },
			fx.As(new(queries.CatalogCache)),
			fx.As(new(commands.CatalogInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
