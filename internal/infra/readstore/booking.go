package readstore

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// CarAvailable is the availability predicate: true iff no confirmed
// booking for the car intersects the requested closed date interval.
// Inclusive comparisons on both ends make touching endpoints conflict.
func (s *BookingReadStore) CarAvailable(ctx context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error) {
	const q = `
		SELECT NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status = 'confirmed'
			  AND pickup_date <= $3
			  AND return_date >= $2
		)`

	var available bool
	err := s.db.QueryRow(ctx, q, carID, dates.Pickup(), dates.Return()).Scan(&available)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check car availability", err)
	}

	return available, nil
}

func (s *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const q = `
		SELECT b.id, b.car_id, c.name, c.brand, c.model,
		       b.pickup_date, b.return_date,
		       b.pickup_location_id, pl.name, pl.city,
		       b.return_location_id, rl.name, rl.city,
		       b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN cars c ON b.car_id = c.id
		JOIN locations pl ON b.pickup_location_id = pl.id
		JOIN locations rl ON b.return_location_id = rl.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		item := &queries.BookingListItem{}
		err := rows.Scan(
			&item.ID, &item.CarID, &item.CarName, &item.CarBrand, &item.CarModel,
			&item.PickupDate, &item.ReturnDate,
			&item.PickupLocationID, &item.PickupLocationName, &item.PickupCity,
			&item.ReturnLocationID, &item.ReturnLocationName, &item.ReturnCity,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

func (s *BookingReadStore) ListAll(ctx context.Context) ([]*queries.AdminBookingListItem, error) {
	const q = `
		SELECT b.id, b.user_id, u.full_name, u.email,
		       b.car_id, c.name,
		       b.pickup_date, b.return_date,
		       b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN cars c ON b.car_id = c.id
		ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all bookings", err)
	}
	defer rows.Close()

	var result []*queries.AdminBookingListItem
	for rows.Next() {
		item := &queries.AdminBookingListItem{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.UserName, &item.UserEmail,
			&item.CarID, &item.CarName,
			&item.PickupDate, &item.ReturnDate,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin booking row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read admin booking rows", err)
	}

	return result, nil
}

