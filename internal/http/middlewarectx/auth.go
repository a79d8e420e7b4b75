// Package middlewarectx holds the HTTP middleware of the API: bearer token
// authentication, the admin gate, rate limiting, metrics, maintenance mode and
// CORS.
//
// Authenticate resolves the caller from the Authorization header and stores
// the verified claims and the Identity in the request context. Handlers read
// them with ClaimsFrom and IdentityFrom.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/jwt"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/auth"
)

// Key is the type of request context keys set by this package.
type Key string

const (
	// Claims holds the verified *jwt.CustomClaims.
	Claims Key = "claims"
	// Caller holds the resolved models.Identity.
	Caller Key = "identity"
)

// Auth details.
const (
	DetailNotAuthenticated = "Not authenticated"
	DetailTokenExpired     = "Token expired"
	DetailInvalidToken     = "Invalid token"
	DetailUserNotFound     = "User not found"
	DetailAdminRequired    = "Admin access required"
)

// TokenParser verifies bearer tokens.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// IdentityResolver turns verified claims into the caller.
type IdentityResolver interface {
	Identify(ctx context.Context, claims *jwt.CustomClaims) (models.Identity, error)
}

// Authenticate rejects requests without a valid bearer token. Tokens are
// never refreshed here.
func Authenticate(log *slog.Logger, tokens TokenParser, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Authenticate"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				response.Fail(w, r, http.StatusUnauthorized, DetailNotAuthenticated)
				return
			}

			claims, err := tokens.ParseToken(tokenStr)
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				response.Fail(w, r, http.StatusUnauthorized, DetailTokenExpired)
				return
			case err != nil:
				log.Debug("rejected token", sl.Err(err))
				response.Fail(w, r, http.StatusUnauthorized, DetailInvalidToken)
				return
			}

			identity, err := resolver.Identify(r.Context(), claims)
			if err != nil {
				if errors.Is(err, auth.ErrUserNotFound) {
					response.Fail(w, r, http.StatusUnauthorized, DetailUserNotFound)
					return
				}
				log.Error("failed to resolve caller", sl.Err(err))
				response.Internal(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), Claims, claims)
			ctx = context.WithValue(ctx, Caller, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin lets through only admin tokens. It must run after
// Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			response.Fail(w, r, http.StatusUnauthorized, DetailNotAuthenticated)
			return
		}
		if !claims.IsAdmin {
			response.Fail(w, r, http.StatusForbidden, DetailAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the verified claims of the request.
func ClaimsFrom(ctx context.Context) (*jwt.CustomClaims, bool) {
	c, ok := ctx.Value(Claims).(*jwt.CustomClaims)
	return c, ok && c != nil
}

// IdentityFrom returns the caller of the request.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(Caller).(models.Identity)
	return id, ok && id != nil
}

// WithIdentity returns ctx carrying the caller, for handlers mounted without
// Authenticate in tests.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, Caller, id)
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
