package repository

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/car"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/google/uuid"
)

const dialectPostgres = "postgres"

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (uuid.UUID, error) {
	const q = `
		INSERT INTO cars (
			id, name, brand, model, car_type, seats, transmission,
			fuel_type, price_per_day_cents, location_id, available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		c.ID(), c.Name(), c.Brand(), c.Model(), c.CarType(), c.Seats(),
		c.Transmission(), c.FuelType(), c.PricePerDayCents(), c.LocationID(), c.IsAvailable(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}

	return c.ID(), nil
}

// Update writes only the whitelisted columns present in fields. The SET
// clause is assembled column by column; arbitrary field names cannot
// reach the statement.
func (r *CarRepository) Update(ctx context.Context, id uuid.UUID, fields shared.CarUpdate) (int64, error) {
	record := carUpdateRecord(fields)
	if len(record) == 0 {
		return 0, errs.New("no fields to update")
	}

	stmt := goqu.Dialect(dialectPostgres).
		Update("cars").
		Set(record).
		Where(goqu.C("id").Eq(id))

	sqlQuery, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build car update query", err)
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update car", err)
	}

	return tag.RowsAffected(), nil
}

func carUpdateRecord(fields shared.CarUpdate) goqu.Record {
	record := goqu.Record{}
	if fields.Name != nil {
		record["name"] = *fields.Name
	}
	if fields.Brand != nil {
		record["brand"] = *fields.Brand
	}
	if fields.Model != nil {
		record["model"] = *fields.Model
	}
	if fields.CarType != nil {
		record["car_type"] = *fields.CarType
	}
	if fields.Seats != nil {
		record["seats"] = *fields.Seats
	}
	if fields.Transmission != nil {
		record["transmission"] = *fields.Transmission
	}
	if fields.FuelType != nil {
		record["fuel_type"] = *fields.FuelType
	}
	if fields.PricePerDayCents != nil {
		record["price_per_day_cents"] = *fields.PricePerDayCents
	}
	if fields.LocationID != nil {
		record["location_id"] = *fields.LocationID
	}
	if fields.Available != nil {
		record["available"] = *fields.Available
	}
	return record
}
