package repository

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create inserts a confirmed booking. The bookings_no_overlap exclusion
// constraint turns a lost check-then-insert race into a CONFLICT error
// instead of a double booking.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (
			id, user_id, car_id, pickup_date, return_date,
			pickup_location_id, return_location_id, total_price_cents, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, q,
		b.ID(), b.UserID(), b.CarID(), b.Dates().Pickup(), b.Dates().Return(),
		b.PickupLocationID(), b.ReturnLocationID(), b.TotalPriceCents(), b.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return b.ID(), nil
}

// CancelByOwner transitions the booking to cancelled iff it is owned by
// userID. The update deliberately matches already-cancelled rows so a
// repeated cancel succeeds with the same outcome.
func (r *BookingRepository) CancelByOwner(ctx context.Context, bookingID, userID uuid.UUID) (int64, error) {
	const q = `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, q, bookingID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel booking", err)
	}

	return tag.RowsAffected(), nil
}
