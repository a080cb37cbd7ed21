package ports

// TokenClaims is the payload embedded in a session token.
type TokenClaims struct {
	UserID int
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	Issue(userID int) (string, error)
	// Verify returns the embedded claims, or domain.ErrInvalidToken when the
	// token is malformed, carries a bad signature, or has expired.
	Verify(token string) (*TokenClaims, error)
}
