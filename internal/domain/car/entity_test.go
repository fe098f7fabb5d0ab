//go:build unit

package car_test

import (
	"testing"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/car"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	t.Run("new car starts available", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.True(t, c.IsAvailable())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		c, err := builder.NewCarBuilder().
			With(func(b *builder.CarBuilder) { b.Name = "  Model 3  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Model 3", c.Name())
	})

	cases := []struct {
		name   string
		mutate func(*builder.CarBuilder)
		errIs  error
	}{
		{name: "empty name", mutate: func(b *builder.CarBuilder) { b.Name = "   " }, errIs: car.ErrEmptyName},
		{name: "zero seats", mutate: func(b *builder.CarBuilder) { b.Seats = 0 }, errIs: car.ErrInvalidSeats},
		{name: "negative price", mutate: func(b *builder.CarBuilder) { b.PricePerDayCents = -1 }, errIs: car.ErrNegativePrice},
		{name: "missing location", mutate: func(b *builder.CarBuilder) { b.LocationID = uuid.Nil }, errIs: car.ErrNoHomeLocation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewCarBuilder().With(tc.mutate).BuildDomain()
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
