package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("full name cannot be empty")
)

type User struct {
	id        uuid.UUID
	email     string
	fullName  string
	phone     string
	role      Role
	createdAt time.Time
}

func NewUser(email, fullName, phone string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyName
	}

	return &User{
		id:       uuid.New(),
		email:    email,
		fullName: fullName,
		phone:    strings.TrimSpace(phone),
		role:     RoleCustomer,
	}, nil
}

func ReconstructUser(id uuid.UUID, email, fullName, phone string, role Role, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		fullName:  fullName,
		phone:     phone,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Phone() string        { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
