package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor applied to every new password hash.
const bcryptCost = 10

// hashPassword produces a salted one-way hash of the plaintext. Two calls on
// the same input yield different digests.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword reports whether hash was produced from plaintext.
func checkPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
