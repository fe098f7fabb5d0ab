package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshot for command-side validation reads

type CarSnapshot struct {
	ID               uuid.UUID
	Name             string
	LocationID       uuid.UUID
	PricePerDayCents int64
	Available        bool
}

// CarUpdate is the explicit whitelist of mutable catalog columns. Only
// non-nil fields are written; there is no update-by-arbitrary-name path.
type CarUpdate struct {
	Name             *string
	Brand            *string
	Model            *string
	CarType          *string
	Seats            *int
	Transmission     *string
	FuelType         *string
	PricePerDayCents *int64
	LocationID       *uuid.UUID
	Available        *bool
}

func (u CarUpdate) IsEmpty() bool {
	return u.Name == nil && u.Brand == nil && u.Model == nil && u.CarType == nil &&
		u.Seats == nil && u.Transmission == nil && u.FuelType == nil &&
		u.PricePerDayCents == nil && u.LocationID == nil && u.Available == nil
}
