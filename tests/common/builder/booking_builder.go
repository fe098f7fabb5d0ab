//go:build unit || e2e

package builder

import (
	"time"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID           uuid.UUID
	CarID            uuid.UUID
	PickupDate       string
	ReturnDate       string
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	TotalPriceCents  int64
	Today            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	today := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:           uuid.New(),
		CarID:            uuid.New(),
		PickupDate:       "2026-06-10",
		ReturnDate:       "2026-06-15",
		PickupLocationID: uuid.New(),
		ReturnLocationID: uuid.New(),
		TotalPriceCents:  25000,
		Today:            today,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dates, err := booking.ParseDateRange(b.PickupDate, b.ReturnDate, b.Today)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(
		b.UserID, b.CarID, dates,
		b.PickupLocationID, b.ReturnLocationID, b.TotalPriceCents,
	)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	price := b.TotalPriceCents
	return reqdto.CreateBookingRequest{
		CarID:            b.CarID,
		PickupDate:       b.PickupDate,
		ReturnDate:       b.ReturnDate,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		TotalPriceCents:  &price,
	}
}
