package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrNoUpdateFields = errors.New("no fields provided for update")

// User models a registered account. PasswordHash holds the bcrypt digest
// stored in the password column; it is part of the persisted record and is
// returned to callers as-is.
type User struct {
	ID           int    `json:"user_id" db:"user_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"password" db:"password"`
}

// UserPatch describes a partial update. Nil fields are left untouched.
// Password carries an already-hashed value; plaintext never reaches the store.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether the patch touches no columns at all.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
