package repository

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/user"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// Create inserts a new user. A duplicate email surfaces as DUPLICATE_KEY
// via the unique constraint.
func (r *UserRepository) Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, full_name, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q,
		u.ID(), u.Email(), passwordHash, u.FullName(), u.Phone(), u.Role().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return u.ID(), nil
}
