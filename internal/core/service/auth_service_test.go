package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountly/user-service/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, name, email, passwordHash string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, domain.ErrEmailExists
		}
	}
	user := &domain.User{ID: r.nextID, Name: name, Email: email, PasswordHash: passwordHash}
	r.users[user.ID] = cloneUser(user)
	r.nextID++
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int, patch domain.UserPatch) error {
	u, ok := r.users[id]
	if !ok {
		return nil // zero rows affected, not an error
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.PasswordHash = *patch.Password
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	delete(r.users, id)
	return nil
}

func newTestAuthService(t *testing.T, repo *stubUserRepo) *AuthService {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	user, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	first, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw1")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Other", "ann@x.com", "pw2"); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// the original record is untouched
	stored, err := repo.FindByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("original record missing: %v", err)
	}
	if stored.Name != "Ann" || stored.PasswordHash != first.PasswordHash {
		t.Fatalf("original record was altered: %+v", stored)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	user, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "ann@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	tokens, _ := NewTokenService("secret", time.Hour)
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %d in token, got %d", user.ID, claims.UserID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "Ann", "ann@x.com", "pw1")
	if _, err := svc.Login(context.Background(), "ann@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	if _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
