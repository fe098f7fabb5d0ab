//go:build unit || e2e

package builder

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/user"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
		Phone:    "+15550100",
		Role:     "customer",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Email, u.FullName, u.Phone)
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Password: u.Password,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
