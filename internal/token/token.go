// Package token issues and verifies the signed bearer tokens handed out at login.
// Tokens are self-contained HS256 JWTs; nothing is stored server-side, so a token
// stays valid for its full lifetime even if the account behind it is deleted.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL задаёт фиксированный срок жизни токена.
const TTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// Identity is what a token carries: the admin account it was issued for.
type Identity struct {
	ID    int
	Email string
}

type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates a signed token for the given identity with the fixed expiry.
func (m *Manager) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    identity.ID,
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Any failure comes back as an error value, never a panic.
func (m *Manager) Verify(tokenString string) (Identity, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !t.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("%w: id", ErrMissingClaim)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, fmt.Errorf("%w: email", ErrMissingClaim)
	}

	return Identity{ID: int(id), Email: email}, nil
}
