package commands

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/clock"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrBookingConflict         = errs.New("car not available for selected dates")
	ErrBookingNotFound         = errs.New("booking not found or not owned by user")
	ErrDomainValidation        = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	// CreateBooking validates the requested range, checks availability
	// and inserts the booking as one transaction. Of any set of
	// concurrent overlapping requests for a car, exactly one succeeds.
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (uuid.UUID, error)
	// CancelBooking transitions the booking to cancelled if owned by
	// userID. A missing booking and someone else's booking fail the
	// same way; repeating a cancel succeeds.
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (uuid.UUID, error) {
	dates, err := booking.ParseDateRange(req.PickupDate, req.ReturnDate, clock.Today(c.clock))
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CarByID(ctx, req.CarID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Fast-path rejection; the exclusion constraint on insert is the
		// authoritative guard against concurrent writers.
		available, err := tx.Reads().CarAvailable(ctx, req.CarID, dates)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !available {
			return ErrBookingConflict
		}

		entity, err := booking.NewBooking(
			userID, req.CarID, dates,
			req.PickupLocationID, req.ReturnLocationID, req.Price(),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Bookings().CancelByOwner(ctx, bookingID, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			// Not found and not owned are indistinguishable on purpose
			return ErrBookingNotFound
		}
		return nil
	})
}
