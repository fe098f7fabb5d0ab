package request

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Name             string    `json:"name" binding:"required"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	CarType          string    `json:"car_type"`
	Seats            int       `json:"seats" binding:"required,min=1"`
	Transmission     string    `json:"transmission"`
	FuelType         string    `json:"fuel_type"`
	PricePerDayCents int64     `json:"price_per_day_cents" binding:"min=0"`
	LocationID       uuid.UUID `json:"location_id" binding:"required"`
}

// UpdateCarRequest carries only the fields the admin wants to change.
// Absent fields stay untouched; there is no open-ended key set.
type UpdateCarRequest struct {
	Name             *string    `json:"name,omitempty"`
	Brand            *string    `json:"brand,omitempty"`
	Model            *string    `json:"model,omitempty"`
	CarType          *string    `json:"car_type,omitempty"`
	Seats            *int       `json:"seats,omitempty" binding:"omitempty,min=1"`
	Transmission     *string    `json:"transmission,omitempty"`
	FuelType         *string    `json:"fuel_type,omitempty"`
	PricePerDayCents *int64     `json:"price_per_day_cents,omitempty" binding:"omitempty,min=0"`
	LocationID       *uuid.UUID `json:"location_id,omitempty"`
	Available        *bool      `json:"available,omitempty"`
}

func (r UpdateCarRequest) ToUpdate() shared.CarUpdate {
	return shared.CarUpdate{
		Name:             r.Name,
		Brand:            r.Brand,
		Model:            r.Model,
		CarType:          r.CarType,
		Seats:            r.Seats,
		Transmission:     r.Transmission,
		FuelType:         r.FuelType,
		PricePerDayCents: r.PricePerDayCents,
		LocationID:       r.LocationID,
		Available:        r.Available,
	}
}
