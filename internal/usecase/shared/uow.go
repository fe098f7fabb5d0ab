package shared

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/car"
	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/user"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository work to a single database transaction.
// The availability check and the booking insert for one car must observe
// and mutate the ledger as one logical unit; Within is that boundary.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Cars() CarRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the validation reads the write side needs; they run
// on the surrounding transaction.
type CommandReads interface {
	CarByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
	// CarAvailable reports whether no confirmed booking for the car
	// overlaps the range (closed intervals, touching endpoints conflict).
	CarAvailable(ctx context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// CancelByOwner sets status to cancelled for the booking iff it is
	// owned by userID, returning the number of matched rows. Matching an
	// already-cancelled booking re-applies the transition.
	CancelByOwner(ctx context.Context, bookingID, userID uuid.UUID) (int64, error)
}

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, fields CarUpdate) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error)
}
