package queries

import (
	"context"
	"fmt"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type CarViewStore interface {
	List(ctx context.Context, filter CarFilter) ([]*CarListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type LocationViewStore interface {
	List(ctx context.Context) ([]*LocationView, error)
}

// CatalogCache is a best-effort read cache for car listings. Misses and
// failures fall through to the store.
type CatalogCache interface {
	GetCarList(ctx context.Context, filterKey string) ([]*CarListItem, bool)
	SetCarList(ctx context.Context, filterKey string, items []*CarListItem)
}

type CatalogQueries interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	ListCars(ctx context.Context, filter CarFilter) ([]*CarListItem, error)
	GetCar(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type catalogQueriesImpl struct {
	cars      CarViewStore
	locations LocationViewStore
	cache     CatalogCache
}

func NewCatalogQueries(cars CarViewStore, locations LocationViewStore, cache CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{
		cars:      cars,
		locations: locations,
		cache:     cache,
	}
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.locations.List(ctx)
}

func (q *catalogQueriesImpl) ListCars(ctx context.Context, filter CarFilter) ([]*CarListItem, error) {
	key := filter.CacheKey()
	if items, ok := q.cache.GetCarList(ctx, key); ok {
		return items, nil
	}

	items, err := q.cars.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	q.cache.SetCarList(ctx, key, items)
	return items, nil
}

func (q *catalogQueriesImpl) GetCar(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.cars.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to get car")
	}
	return view, nil
}

// CacheKey flattens the filter into a stable cache key component.
func (f CarFilter) CacheKey() string {
	locID := ""
	if f.LocationID != nil {
		locID = f.LocationID.String()
	}
	carType := ""
	if f.CarType != nil {
		carType = *f.CarType
	}
	minP, maxP := int64(-1), int64(-1)
	if f.MinPriceCents != nil {
		minP = *f.MinPriceCents
	}
	if f.MaxPriceCents != nil {
		maxP = *f.MaxPriceCents
	}
	return fmt.Sprintf("loc=%s:type=%s:min=%d:max=%d:avail=%t", locID, carType, minP, maxP, f.AvailableOnly)
}
