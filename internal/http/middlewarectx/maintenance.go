package middlewarectx

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/mavecode/mavecode-api/internal/http/response"
)

// Maintenance answers 503 to every request while active.
func Maintenance(active bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !active {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			response.Unavailable(w, r)
		})
	}
}

// CORS allows any origin with credentials, every method and every header.
// The request origin is echoed since a wildcard is not valid together with
// credentials.
func CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(*http.Request, string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	})(next)
}
