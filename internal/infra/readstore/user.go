package readstore

import (
	"context"
	"errors"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `SELECT id, email, full_name, phone, role FROM users WHERE id = $1`

	view := &queries.AuthorizedUserView{}
	err := s.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Email, &view.FullName, &view.Phone, &view.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return view, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const q = `SELECT id, email, full_name, phone, role, password_hash FROM users WHERE email = $1`

	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := s.db.QueryRow(ctx, q, email).Scan(
		&view.ID, &view.Email, &view.FullName, &view.Phone, &view.Role, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return view, passwordHash, nil
}
