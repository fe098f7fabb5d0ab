package commands

import (
	"context"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/user"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/jwt"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/password"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

// UserReadStore loads credentials for login.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type AuthResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	userStore UserReadStore
	tokens    *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userStore UserReadStore, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		userStore: userStore,
		tokens:    tokens,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	entity, err := user.NewUser(req.Email, req.FullName, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, entity, hash); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:       entity.ID(),
			Email:    entity.Email(),
			FullName: entity.FullName(),
			Phone:    entity.Phone(),
			Role:     entity.Role().String(),
		},
	}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	view, hash, err := c.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.tokens.GenerateToken(view.ID, user.Role(view.Role))
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{Token: token, User: view}, nil
}
