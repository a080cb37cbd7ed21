package ports

import (
	"context"

	"github.com/accountly/user-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// All implementations must use parameterized statements only.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update applies the non-nil fields of patch to the row with the given id.
	// Updating a missing id is not an error; it affects zero rows.
	Update(ctx context.Context, id int, patch domain.UserPatch) error
	// Delete is idempotent: deleting a missing id succeeds.
	Delete(ctx context.Context, id int) error
}
