//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarStore struct {
	items     []*queries.CarListItem
	listCalls int
}

func (f *fakeCarStore) List(_ context.Context, _ queries.CarFilter) ([]*queries.CarListItem, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeCarStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CarView, error) {
	for _, item := range f.items {
		if item.ID == id {
			return &queries.CarView{CarListItem: *item}, nil
		}
	}
	return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
}

type fakeLocationStore struct{}

func (fakeLocationStore) List(_ context.Context) ([]*queries.LocationView, error) {
	return []*queries.LocationView{{ID: uuid.New(), City: "Springfield"}}, nil
}

type fakeCache struct {
	entries map[string][]*queries.CarListItem
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]*queries.CarListItem)}
}

func (f *fakeCache) GetCarList(_ context.Context, key string) ([]*queries.CarListItem, bool) {
	items, ok := f.entries[key]
	return items, ok
}

func (f *fakeCache) SetCarList(_ context.Context, key string, items []*queries.CarListItem) {
	f.entries[key] = items
}

func TestListCars(t *testing.T) {
	ctx := context.Background()

	t.Run("miss populates cache, hit skips store", func(t *testing.T) {
		store := &fakeCarStore{items: []*queries.CarListItem{builder.NewCarBuilder().BuildListItem()}}
		cache := newFakeCache()
		q := queries.NewCatalogQueries(store, fakeLocationStore{}, cache)

		first, err := q.ListCars(ctx, queries.CarFilter{})
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, 1, store.listCalls)

		second, err := q.ListCars(ctx, queries.CarFilter{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, store.listCalls, "second call must be served from cache")
	})

	t.Run("different filters use different cache entries", func(t *testing.T) {
		store := &fakeCarStore{items: []*queries.CarListItem{builder.NewCarBuilder().BuildListItem()}}
		cache := newFakeCache()
		q := queries.NewCatalogQueries(store, fakeLocationStore{}, cache)

		_, err := q.ListCars(ctx, queries.CarFilter{})
		require.NoError(t, err)

		carType := "suv"
		_, err = q.ListCars(ctx, queries.CarFilter{CarType: &carType})
		require.NoError(t, err)

		assert.Equal(t, 2, store.listCalls)
		assert.Len(t, cache.entries, 2)
	})
}

func TestGetCar(t *testing.T) {
	ctx := context.Background()
	item := builder.NewCarBuilder().BuildListItem()
	store := &fakeCarStore{items: []*queries.CarListItem{item}}
	q := queries.NewCatalogQueries(store, fakeLocationStore{}, newFakeCache())

	t.Run("found", func(t *testing.T) {
		view, err := q.GetCar(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.Name, view.Name)
	})

	t.Run("unknown id maps to sentinel", func(t *testing.T) {
		_, err := q.GetCar(ctx, uuid.New())
		require.ErrorIs(t, err, queries.ErrCarNotFound)
	})
}

func TestCarFilterCacheKey(t *testing.T) {
	assert.Equal(t, "loc=:type=:min=-1:max=-1:avail=false", queries.CarFilter{}.CacheKey())

	locID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	carType := "suv"
	minP, maxP := int64(1000), int64(9000)
	filter := queries.CarFilter{
		LocationID:    &locID,
		CarType:       &carType,
		MinPriceCents: &minP,
		MaxPriceCents: &maxP,
		AvailableOnly: true,
	}
	assert.Equal(t,
		"loc=11111111-2222-3333-4444-555555555555:type=suv:min=1000:max=9000:avail=true",
		filter.CacheKey())
}
