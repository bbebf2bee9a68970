// Package token issues and verifies the signed credential delivered in the
// session cookie. Tokens are valid until their fixed expiry; there is no
// refresh or revocation mechanism.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the cookie the credential travels in.
const CookieName = "token"

// ErrExpired distinguishes an expired credential from every other
// verification failure so clients can prompt a re-login specifically.
var ErrExpired = errors.New("token: credential has expired")

// Session is the verified identity attached to a request.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

type claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies credentials with a shared HS256 secret.
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewManager(secret, issuer string, expiry time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
	}
}

// Expiry returns the configured credential lifetime.
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// Issue signs a credential carrying the user's identifier with issued-at,
// expiry and issuer claims.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	c := claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			Issuer:    m.issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and issuer and returns the session the
// credential asserts.
func (m *Manager) Verify(raw string) (*Session, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	var c claims
	if _, err := parser.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}

	if !c.VerifyIssuer(m.issuer, true) {
		return nil, errors.New("token has invalid issuer")
	}
	if c.ID == "" {
		return nil, errors.New("token has no user id")
	}

	return &Session{
		UserID:    c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
