package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/accountly/user-service/internal/core/domain"
)

// uniqueViolation is the Postgres error code raised when an insert or update
// breaks the unique constraint on the email column.
const uniqueViolation = "23505"

// UserRepository persists user records in Postgres. Every statement is
// parameterized; identifiers are never taken from caller input.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3)
		 RETURNING user_id, name, email, password`,
		name, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT user_id, name, email, password FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT user_id, name, email, password FROM users WHERE user_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users,
		`SELECT user_id, name, email, password FROM users`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int, patch domain.UserPatch) error {
	query, args, err := buildUpdate(id, patch)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// buildUpdate maps the non-nil fields of patch to SET clauses. Column names
// come only from the fixed list below, never from caller-supplied keys, and
// values are bound as placeholders.
func buildUpdate(id int, patch domain.UserPatch) (string, []any, error) {
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 4)

	set := func(column string, value string) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Password != nil {
		set("password", *patch.Password)
	}

	if len(clauses) == 0 {
		return "", nil, domain.ErrNoUpdateFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d",
		strings.Join(clauses, ", "), len(args))
	return query, args, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
