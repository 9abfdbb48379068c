package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Login issues the longer session token; DefaultTTL is
// the fallback when a caller passes a non-positive ttl.
const (
	DefaultTTL = 15 * time.Minute
	LoginTTL   = 60 * time.Minute
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, elapsed expiry, or missing subject. Callers must not
// distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies signed bearer tokens. The secret is
// injected once at construction and never re-read.
type TokenManager struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenManager creates a manager with the provided signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Issue returns a signed HS256 token whose subject is the given email,
// expiring at now + ttl. A non-positive ttl falls back to DefaultTTL.
func (t *TokenManager) Issue(subjectEmail string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectEmail,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the subject email.
// Any failure collapses into ErrInvalidToken.
func (t *TokenManager) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := t.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
