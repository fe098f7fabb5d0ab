package readstore

import (
	"context"
	"errors"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dialectPostgres = "postgres"

var carListColumns = []any{
	"c.id", "c.name", "c.brand", "c.model", "c.car_type", "c.seats",
	"c.transmission", "c.fuel_type", "c.price_per_day_cents",
	"c.location_id", "l.name", "l.city", "c.available",
}

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

// List returns catalog rows matching the filter, cheapest first. The
// filter is assembled with goqu so only requested predicates reach the
// query.
func (s *CarReadStore) List(ctx context.Context, filter queries.CarFilter) ([]*queries.CarListItem, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(goqu.T("cars").As("c")).
		Join(goqu.T("locations").As("l"), goqu.On(goqu.I("c.location_id").Eq(goqu.I("l.id")))).
		Select(carListColumns...).
		Order(goqu.I("c.price_per_day_cents").Asc())

	if filter.AvailableOnly {
		stmt = stmt.Where(goqu.I("c.available").IsTrue())
	}
	if filter.LocationID != nil {
		stmt = stmt.Where(goqu.I("c.location_id").Eq(*filter.LocationID))
	}
	if filter.CarType != nil {
		stmt = stmt.Where(goqu.I("c.car_type").Eq(*filter.CarType))
	}
	if filter.MinPriceCents != nil {
		stmt = stmt.Where(goqu.I("c.price_per_day_cents").Gte(*filter.MinPriceCents))
	}
	if filter.MaxPriceCents != nil {
		stmt = stmt.Where(goqu.I("c.price_per_day_cents").Lte(*filter.MaxPriceCents))
	}

	sqlQuery, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build car list query", err)
	}

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	var result []*queries.CarListItem
	for rows.Next() {
		item := &queries.CarListItem{}
		if err := scanCarListItem(rows, item); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}

	return result, nil
}

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	const q = `
		SELECT c.id, c.name, c.brand, c.model, c.car_type, c.seats,
		       c.transmission, c.fuel_type, c.price_per_day_cents,
		       c.location_id, l.name, l.city, c.available, l.address
		FROM cars c
		JOIN locations l ON c.location_id = l.id
		WHERE c.id = $1`

	view := &queries.CarView{}
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Name, &view.Brand, &view.Model, &view.CarType, &view.Seats,
		&view.Transmission, &view.FuelType, &view.PricePerDayCents,
		&view.LocationID, &view.LocationName, &view.LocationCity, &view.Available,
		&view.LocationAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return view, nil
}

// Snapshot is the command-side read: enough of the car to validate a
// booking against, or NotFound.
func (s *CarReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	const q = `
		SELECT id, name, location_id, price_per_day_cents, available
		FROM cars
		WHERE id = $1`

	var snap shared.CarSnapshot
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Name, &snap.LocationID, &snap.PricePerDayCents, &snap.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to snapshot car", err)
	}

	return &snap, nil
}

func scanCarListItem(rows pgx.Rows, item *queries.CarListItem) error {
	return rows.Scan(
		&item.ID, &item.Name, &item.Brand, &item.Model, &item.CarType, &item.Seats,
		&item.Transmission, &item.FuelType, &item.PricePerDayCents,
		&item.LocationID, &item.LocationName, &item.LocationCity, &item.Available,
	)
}
