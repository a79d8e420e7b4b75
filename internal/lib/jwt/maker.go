// Package jwt issues and verifies the API's bearer tokens.
//
// Tokens are HS256-signed, carry the subject id and an admin flag, and expire
// after a fixed TTL. There is no server-side session or revocation list:
// a token stays valid until it expires.
package jwt

import (
	"errors"
	"time"
)

var (
	// ErrTokenExpired is returned for a well-formed token whose exp is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// DefaultTTL is the lifetime of issued tokens unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// Maker issues and parses tokens.
type Maker interface {
	GenerateToken(subjectID string, isAdmin bool) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with a shared HMAC secret.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

// Option customises a MakerImpl.
type Option func(*MakerImpl)

// WithClock replaces the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker builds a MakerImpl. A non-positive ttl falls back to DefaultTTL.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) *MakerImpl {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
