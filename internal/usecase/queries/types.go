package queries

import (
	"time"

	"github.com/google/uuid"
)

// LocationView represents read-optimized location data
type LocationView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Address string    `json:"address"`
}

// CarListItem represents one catalog row joined with its home location
type CarListItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	CarType          string    `json:"car_type"`
	Seats            int       `json:"seats"`
	Transmission     string    `json:"transmission"`
	FuelType         string    `json:"fuel_type"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	LocationID       uuid.UUID `json:"location_id"`
	LocationName     string    `json:"location_name"`
	LocationCity     string    `json:"location_city"`
	Available        bool      `json:"available"`
}

// CarView is the catalog detail view, including the location address
type CarView struct {
	CarListItem
	LocationAddress string `json:"location_address"`
}

// CarFilter narrows the catalog listing. Zero values mean "no filter".
type CarFilter struct {
	LocationID    *uuid.UUID
	CarType       *string
	MinPriceCents *int64
	MaxPriceCents *int64
	AvailableOnly bool
}

// BookingListItem is a user's booking denormalized with car and location
// display attributes
type BookingListItem struct {
	ID                 uuid.UUID `json:"id"`
	CarID              uuid.UUID `json:"car_id"`
	CarName            string    `json:"car_name"`
	CarBrand           string    `json:"car_brand"`
	CarModel           string    `json:"car_model"`
	PickupDate         time.Time `json:"-"`
	ReturnDate         time.Time `json:"-"`
	PickupLocationID   uuid.UUID `json:"pickup_location_id"`
	PickupLocationName string    `json:"pickup_location_name"`
	PickupCity         string    `json:"pickup_city"`
	ReturnLocationID   uuid.UUID `json:"return_location_id"`
	ReturnLocationName string    `json:"return_location_name"`
	ReturnCity         string    `json:"return_city"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// AdminBookingListItem joins bookings with the owning user for the
// read-only admin report
type AdminBookingListItem struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	CarID           uuid.UUID `json:"car_id"`
	CarName         string    `json:"car_name"`
	PickupDate      time.Time `json:"-"`
	ReturnDate      time.Time `json:"-"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with
// authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
}
