package car

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("car name cannot be empty")
	ErrInvalidSeats   = errors.New("seats must be positive")
	ErrNegativePrice  = errors.New("daily price cannot be negative")
	ErrNoHomeLocation = errors.New("car must have a home location")
)

// Car is a catalog entry. The available flag is a soft toggle set by
// catalog management, distinct from date-based booking conflicts: a car
// with available=false never shows up for rental regardless of bookings.
type Car struct {
	id                uuid.UUID
	name              string
	brand             string
	model             string
	carType           string
	seats             int
	transmission      string
	fuelType          string
	pricePerDayCents  int64
	locationID        uuid.UUID
	available         bool
}

func NewCar(
	name, brand, model, carType string,
	seats int,
	transmission, fuelType string,
	pricePerDayCents int64,
	locationID uuid.UUID,
) (*Car, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if seats <= 0 {
		return nil, ErrInvalidSeats
	}
	if pricePerDayCents < 0 {
		return nil, ErrNegativePrice
	}
	if locationID == uuid.Nil {
		return nil, ErrNoHomeLocation
	}

	return &Car{
		id:               uuid.New(),
		name:             name,
		brand:            brand,
		model:            model,
		carType:          carType,
		seats:            seats,
		transmission:     transmission,
		fuelType:         fuelType,
		pricePerDayCents: pricePerDayCents,
		locationID:       locationID,
		available:        true,
	}, nil
}

func (c *Car) ID() uuid.UUID          { return c.id }
func (c *Car) Name() string           { return c.name }
func (c *Car) Brand() string          { return c.brand }
func (c *Car) Model() string          { return c.model }
func (c *Car) CarType() string        { return c.carType }
func (c *Car) Seats() int             { return c.seats }
func (c *Car) Transmission() string   { return c.transmission }
func (c *Car) FuelType() string       { return c.fuelType }
func (c *Car) PricePerDayCents() int64 { return c.pricePerDayCents }
func (c *Car) LocationID() uuid.UUID  { return c.locationID }
func (c *Car) IsAvailable() bool      { return c.available }
