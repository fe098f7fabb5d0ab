package commands

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/car"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errs.New("location not found")
	ErrEmptyUpdate      = errs.New("no fields to update")
)

// CatalogInvalidator drops cached catalog listings after a write.
type CatalogInvalidator interface {
	InvalidateCars(ctx context.Context)
}

type CarCommands interface {
	AddCar(ctx context.Context, req reqdto.CreateCarRequest) (uuid.UUID, error)
	UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) error
}

type carCommandsImpl struct {
	uow     shared.UnitOfWork
	invalid CatalogInvalidator
}

func NewCarCommands(uow shared.UnitOfWork, invalid CatalogInvalidator) CarCommands {
	return &carCommandsImpl{
		uow:     uow,
		invalid: invalid,
	}
}

func (c *carCommandsImpl) AddCar(ctx context.Context, req reqdto.CreateCarRequest) (uuid.UUID, error) {
	entity, err := car.NewCar(
		req.Name, req.Brand, req.Model, req.CarType,
		req.Seats, req.Transmission, req.FuelType,
		req.PricePerDayCents, req.LocationID,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var carID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Cars().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		carID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.invalid.InvalidateCars(ctx)
	return carID, nil
}

func (c *carCommandsImpl) UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) error {
	fields := req.ToUpdate()
	if fields.IsEmpty() {
		return ErrEmptyUpdate
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Cars().Update(ctx, id, fields)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrLocationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			return ErrCarNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalid.InvalidateCars(ctx)
	return nil
}
