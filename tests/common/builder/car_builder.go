//go:build unit || e2e

package builder

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/car"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	Name             string
	Brand            string
	Model            string
	CarType          string
	Seats            int
	Transmission     string
	FuelType         string
	PricePerDayCents int64
	LocationID       uuid.UUID
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		Name:             "Corolla Hybrid",
		Brand:            "Toyota",
		Model:            "Corolla",
		CarType:          "sedan",
		Seats:            5,
		Transmission:     "automatic",
		FuelType:         "hybrid",
		PricePerDayCents: 5000,
		LocationID:       uuid.New(),
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

func (c *CarBuilder) BuildDomain() (*car.Car, error) {
	return car.NewCar(
		c.Name, c.Brand, c.Model, c.CarType,
		c.Seats, c.Transmission, c.FuelType,
		c.PricePerDayCents, c.LocationID,
	)
}

func (c *CarBuilder) BuildDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Name:             c.Name,
		Brand:            c.Brand,
		Model:            c.Model,
		CarType:          c.CarType,
		Seats:            c.Seats,
		Transmission:     c.Transmission,
		FuelType:         c.FuelType,
		PricePerDayCents: c.PricePerDayCents,
		LocationID:       c.LocationID,
	}
}

func (c *CarBuilder) BuildListItem() *queries.CarListItem {
	return &queries.CarListItem{
		ID:               uuid.New(),
		Name:             c.Name,
		Brand:            c.Brand,
		Model:            c.Model,
		CarType:          c.CarType,
		Seats:            c.Seats,
		Transmission:     c.Transmission,
		FuelType:         c.FuelType,
		PricePerDayCents: c.PricePerDayCents,
		LocationID:       c.LocationID,
		LocationName:     "Downtown Branch",
		LocationCity:     "Springfield",
		Available:        true,
	}
}
