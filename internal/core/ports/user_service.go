package ports

import (
	"context"

	"github.com/accountly/user-service/internal/core/domain"
)

// UpdateUserInput carries the optional fields of a partial update.
// Password, when set, is plaintext; the service hashes it before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) error
	Delete(ctx context.Context, id int) error
}
