package queries

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/clock"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound = errs.New("car not found")
)

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context) ([]*AdminBookingListItem, error)
	CarAvailable(ctx context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error)
}

type CarSnapshotStore interface {
	Snapshot(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error)
}

type BookingQueries interface {
	// ListForUser returns the user's bookings newest-created first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// ListAll is the admin report: every booking, newest first.
	ListAll(ctx context.Context) ([]*AdminBookingListItem, error)
	// CarAvailable parses and validates the requested dates, then runs
	// the availability predicate. Date errors surface as the domain's
	// booking.Err* values.
	CarAvailable(ctx context.Context, carID uuid.UUID, pickupDate, returnDate string) (bool, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	cars     CarSnapshotStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, cars CarSnapshotStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		cars:     cars,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.bookings.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*AdminBookingListItem, error) {
	return q.bookings.ListAll(ctx)
}

func (q *bookingQueriesImpl) CarAvailable(ctx context.Context, carID uuid.UUID, pickupDate, returnDate string) (bool, error) {
	dates, err := booking.ParseDateRange(pickupDate, returnDate, clock.Today(q.clock))
	if err != nil {
		return false, err
	}

	if _, err := q.cars.Snapshot(ctx, carID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrCarNotFound
		}
		return false, errs.Wrap(err, "failed to verify car")
	}

	return q.bookings.CarAvailable(ctx, carID, dates)
}
