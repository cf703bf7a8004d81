package auth

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth"
)

const TokenType = "bearer"

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies signed access tokens whose subject is the
// user's email.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
	now  func() time.Time
}

func NewTokenManager(secret, algorithm string, ttl time.Duration) *TokenManager {
	if algorithm == "" {
		algorithm = "HS256"
	}
	return &TokenManager{
		auth: jwtauth.New(algorithm, []byte(secret), nil),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Issue returns a token for subject expiring after the configured TTL.
func (m *TokenManager) Issue(subject string) (string, error) {
	now := m.now()
	claims := map[string]interface{}{
		"sub": subject,
		"iat": now.UTC().Unix(),
	}
	jwtauth.SetExpiry(claims, now.Add(m.ttl))
	_, tokenString, err := m.auth.Encode(claims)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// Subject verifies tokenString and returns its subject claim.
func (m *TokenManager) Subject(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil {
		return "", err
	}
	if token == nil || token.Subject() == "" {
		return "", ErrInvalidToken
	}
	return token.Subject(), nil
}
