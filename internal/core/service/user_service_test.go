package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountly/user-service/internal/core/domain"
	"github.com/accountly/user-service/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, password string) *domain.User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	user, err := repo.Create(context.Background(), name, email, hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_Update_NoFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), 1, ports.UpdateUserInput{})
	if !errors.Is(err, domain.ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields, got %v", err)
	}
}

func TestUserService_Update_EmptyStringsCountAsAbsent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "Ann", "ann@x.com", "pw1")

	blank := ""
	err := svc.Update(context.Background(), 1, ports.UpdateUserInput{Name: &blank, Password: &blank})
	if !errors.Is(err, domain.ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields for all-blank input, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), 1)
	if stored.Name != "Ann" {
		t.Fatalf("blank value overwrote name: %q", stored.Name)
	}
}

func TestUserService_Update_BlankFieldDoesNotClearColumn(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Ann", "ann@x.com", "pw1")

	blank := ""
	email := "anna@x.com"
	if err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: &blank, Email: &email}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Name != "Ann" {
		t.Fatalf("blank name reached the store: %q", stored.Name)
	}
	if stored.Email != "anna@x.com" {
		t.Fatalf("expected email to change, got %q", stored.Email)
	}
}

func TestUserService_Update_NameOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Ann", "ann@x.com", "pw1")

	name := "Anna"
	if err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: &name}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Name != "Anna" {
		t.Fatalf("expected name to change, got %q", stored.Name)
	}
	if stored.Email != "ann@x.com" {
		t.Fatalf("email changed unexpectedly: %q", stored.Email)
	}
	if stored.PasswordHash != user.PasswordHash {
		t.Fatalf("password hash changed unexpectedly")
	}
}

func TestUserService_Update_HashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Ann", "ann@x.com", "pw1")

	password := "pw2"
	if err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &password}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.PasswordHash == "pw2" {
		t.Fatalf("plaintext password reached the store")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw2")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Update_MissingIDSucceeds(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	name := "Ghost"
	if err := svc.Update(context.Background(), 999, ports.UpdateUserInput{Name: &name}); err != nil {
		t.Fatalf("updating a missing id should succeed, got %v", err)
	}
}

func TestUserService_Delete_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Ann", "ann@x.com", "pw1")

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("second delete should succeed, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
