package response

import (
	"time"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type BookingListResponse struct {
	ID                 uuid.UUID `json:"id"`
	CarID              uuid.UUID `json:"car_id"`
	CarName            string    `json:"car_name"`
	CarBrand           string    `json:"car_brand"`
	CarModel           string    `json:"car_model"`
	PickupDate         string    `json:"pickup_date"`
	ReturnDate         string    `json:"return_date"`
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

type AdminBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	CarID           uuid.UUID `json:"car_id"`
	CarName         string    `json:"car_name"`
	PickupDate      string    `json:"pickup_date"`
	ReturnDate      string    `json:"return_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	CarID      uuid.UUID `json:"car_id"`
	PickupDate string    `json:"pickup_date"`
	ReturnDate string    `json:"return_date"`
	Available  bool      `json:"available"`
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:                 v.ID,
		CarID:              v.CarID,
		CarName:            v.CarName,
		CarBrand:           v.CarBrand,
		CarModel:           v.CarModel,
		PickupDate:         v.PickupDate.Format(booking.DateFormat),
		ReturnDate:         v.ReturnDate.Format(booking.DateFormat),
		PickupLocationID:   v.PickupLocationID,
		PickupLocationName: v.PickupLocationName,
		PickupCity:         v.PickupCity,
		ReturnLocationID:   v.ReturnLocationID,
		ReturnLocationName: v.ReturnLocationName,
		ReturnCity:         v.ReturnCity,
		TotalPriceCents:    v.TotalPriceCents,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromBookingListItem(item))
	}
	return out
}

func FromAdminBookingListItem(v *queries.AdminBookingListItem) *AdminBookingResponse {
	return &AdminBookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		UserName:        v.UserName,
		UserEmail:       v.UserEmail,
		CarID:           v.CarID,
		CarName:         v.CarName,
		PickupDate:      v.PickupDate.Format(booking.DateFormat),
		ReturnDate:      v.ReturnDate.Format(booking.DateFormat),
		TotalPriceCents: v.TotalPriceCents,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}

func FromAdminBookingListItems(items []*queries.AdminBookingListItem) []*AdminBookingResponse {
	out := make([]*AdminBookingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromAdminBookingListItem(item))
	}
	return out
}
