package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accountly/user-service/internal/core/domain"
	"github.com/accountly/user-service/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// sessionClaims is the JWT payload carried by a session token.
type sessionClaims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is injected at construction; it is never read from ambient state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. An empty secret is rejected so a
// misconfigured process fails at startup instead of signing with a blank key.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token embedding the user id, issued now and expiring after
// the configured TTL.
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Any failure — malformed input, wrong
// signature, wrong algorithm, or expiry — collapses to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*ports.TokenClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: claims.UserID}, nil
}
