// Package auth guards the admin surface. Access is granted either by
// presenting the configured shared secret or by a short-lived session
// token previously issued in exchange for it.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Admin issues and checks admin credentials.
type Admin struct {
	secret   string
	tokenTTL time.Duration
}

// NewAdmin creates an authenticator around the shared secret.
func NewAdmin(secret string, tokenTTL time.Duration) *Admin {
	return &Admin{secret: secret, tokenTTL: tokenTTL}
}

// KeyMatches compares a presented key against the configured secret in
// constant time. An empty configured secret never matches.
func (a *Admin) KeyMatches(key string) bool {
	if a.secret == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.secret), []byte(key)) == 1
}

// sessionClaims is the payload of an admin session token.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// IssueToken creates a signed session token and its expiry.
func (a *Admin) IssueToken() (string, time.Time, error) {
	expiresAt := time.Now().Add(a.tokenTTL)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken checks a session token. The reason for rejection is
// deliberately not reported to the caller.
func (a *Admin) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
