package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID            uuid.UUID `json:"car_id" binding:"required"`
	PickupDate       string    `json:"pickup_date" binding:"required"`
	ReturnDate       string    `json:"return_date" binding:"required"`
	PickupLocationID uuid.UUID `json:"pickup_location_id" binding:"required"`
	ReturnLocationID uuid.UUID `json:"return_location_id" binding:"required"`
	TotalPriceCents  *int64    `json:"total_price_cents" binding:"required,min=0"`
}

func (r CreateBookingRequest) Price() int64 {
	if r.TotalPriceCents == nil {
		return 0
	}
	return *r.TotalPriceCents
}
