package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accountly/user-service/internal/core/domain"
	"github.com/accountly/user-service/internal/core/ports"
)

// UserService implements read, update and delete operations on user records.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Empty-string fields count as absent, so a
// record can never lose a populated field to a blank value. A supplied
// plaintext password is hashed before it reaches the repository. An input
// with no fields set fails with ErrNoUpdateFields without touching the store.
// Updating an id that does not exist succeeds silently with zero rows affected.
func (s *UserService) Update(ctx context.Context, id int, input ports.UpdateUserInput) error {
	patch := domain.UserPatch{
		Name:  presentField(input.Name),
		Email: presentField(input.Email),
	}
	if password := presentField(input.Password); password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return err
		}
		patch.Password = &hash
	}

	if patch.Empty() {
		return domain.ErrNoUpdateFields
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).
		Bool("name", patch.Name != nil).
		Bool("email", patch.Email != nil).
		Bool("password", patch.Password != nil).
		Msg("user updated")
	return nil
}

// presentField collapses an empty string to nil so blank values never
// overwrite a populated column.
func presentField(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Delete removes a user. Deleting a missing id is a no-op, not an error.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
