package readstore

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
)

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(dbtx db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: dbtx}
}

func (s *LocationReadStore) List(ctx context.Context) ([]*queries.LocationView, error) {
	const q = `SELECT id, name, city, address FROM locations ORDER BY city`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	var result []*queries.LocationView
	for rows.Next() {
		view := &queries.LocationView{}
		if err := rows.Scan(&view.ID, &view.Name, &view.City, &view.Address); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read location rows", err)
	}

	return result, nil
}
