package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("total price cannot be negative")

// Booking is one rental of one car by one user. It is created in the
// confirmed state and participates in the per-car no-overlap invariant
// until cancelled. The total price is supplied by the caller and never
// recomputed here.
type Booking struct {
	id               uuid.UUID
	userID           uuid.UUID
	carID            uuid.UUID
	dates            DateRange
	pickupLocationID uuid.UUID
	returnLocationID uuid.UUID
	totalPriceCents  int64
	status           Status
	createdAt        time.Time
}

func NewBooking(
	userID, carID uuid.UUID,
	dates DateRange,
	pickupLocationID, returnLocationID uuid.UUID,
	totalPriceCents int64,
) (*Booking, error) {
	if totalPriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:               uuid.New(),
		userID:           userID,
		carID:            carID,
		dates:            dates,
		pickupLocationID: pickupLocationID,
		returnLocationID: returnLocationID,
		totalPriceCents:  totalPriceCents,
		status:           StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, userID, carID uuid.UUID,
	dates DateRange,
	pickupLocationID, returnLocationID uuid.UUID,
	totalPriceCents int64,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		userID:           userID,
		carID:            carID,
		dates:            dates,
		pickupLocationID: pickupLocationID,
		returnLocationID: returnLocationID,
		totalPriceCents:  totalPriceCents,
		status:           status,
		createdAt:        createdAt,
	}
}

// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking succeeds; the transition is idempotent.
func (b *Booking) Cancel() {
	b.status = StatusCancelled
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// ConflictsWith reports whether two bookings on the same car both count
// against availability. Only confirmed bookings participate.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.carID != other.carID {
		return false
	}
	if !b.IsActive() || !other.IsActive() {
		return false
	}
	return b.dates.Overlaps(other.dates)
}

// IsOneWay reports whether the car is returned to a different location
// than it was picked up from. One-way rentals do not move the car's home
// location.
func (b *Booking) IsOneWay() bool {
	return b.pickupLocationID != b.returnLocationID
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) CarID() uuid.UUID            { return b.carID }
func (b *Booking) Dates() DateRange            { return b.dates }
func (b *Booking) PickupLocationID() uuid.UUID { return b.pickupLocationID }
func (b *Booking) ReturnLocationID() uuid.UUID { return b.returnLocationID }
func (b *Booking) TotalPriceCents() int64      { return b.totalPriceCents }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
