package response

import (
	"github.com/google/uuid"
)

type CreateCarResponse struct {
	ID uuid.UUID `json:"id"`
}
