package response

import (
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
)

type AuthResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: r.Token,
		User:        r.User,
	}
}
