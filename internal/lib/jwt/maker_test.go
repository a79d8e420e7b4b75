package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_1234567890"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	maker := NewJWTMaker(testSecret, 15*time.Minute)

	tests := []struct {
		name      string
		subjectID string
		isAdmin   bool
	}{
		{name: "regular user", subjectID: "5f1c1f0e-8d8a-4b59-9a56-8d1f1b0c2a11", isAdmin: false},
		{name: "admin", subjectID: "admin", isAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.subjectID, tt.isAdmin)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.subjectID, claims.UserID)
			assert.Equal(t, tt.subjectID, claims.Subject)
			assert.Equal(t, tt.isAdmin, claims.IsAdmin)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_DefaultTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	maker := NewJWTMaker(testSecret, 0, WithClock(fixedClock(issuedAt)))

	token, err := maker.GenerateToken("user-1", false)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestJWTMaker_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	token, err := NewJWTMaker(testSecret, 24*time.Hour, WithClock(fixedClock(issuedAt))).
		GenerateToken("user-1", false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{name: "immediately", now: issuedAt},
		{name: "one second before expiry", now: issuedAt.Add(24*time.Hour - time.Second)},
		{name: "at expiry", now: issuedAt.Add(24 * time.Hour), wantErr: ErrTokenExpired},
		{name: "a day later", now: issuedAt.Add(48 * time.Hour), wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maker := NewJWTMaker(testSecret, 24*time.Hour, WithClock(fixedClock(tt.now)))
			claims, err := maker.ParseToken(token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, ErrTokenInvalid)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewJWTMaker(testSecret, 15*time.Minute)

	validToken, err := maker.GenerateToken("user-1", false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "wrong secret key", token: tokenWithSecret(t, "wrong_secret_key")},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "none algorithm", token: unsignedToken(t)},
		{name: "missing expiry", token: tokenWithoutExpiry(t)},
		{name: "missing subject", token: tokenWithoutSubject(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			require.ErrorIs(t, err, ErrTokenInvalid)
			assert.NotErrorIs(t, err, ErrTokenExpired)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker("different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken("user-1", true)
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestParseUnverified(t *testing.T) {
	claims := ExternalClaims{
		Email: "someone@gmail.com",
		Name:  "Someone",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "https://accounts.google.com",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("google-does-not-share-this"))
	require.NoError(t, err)

	got, err := ParseUnverified(signed)
	require.NoError(t, err)
	assert.Equal(t, "someone@gmail.com", got.Email)
	assert.Equal(t, "Someone", got.Name)

	_, err = ParseUnverified("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func tokenWithSecret(t *testing.T, secret string) string {
	token, err := NewJWTMaker(secret, 15*time.Minute).GenerateToken("user-1", false)
	require.NoError(t, err)
	return token
}

func unsignedToken(t *testing.T) string {
	claims := CustomClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func tokenWithoutExpiry(t *testing.T) string {
	claims := CustomClaims{UserID: "user-1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func tokenWithoutSubject(t *testing.T) string {
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
