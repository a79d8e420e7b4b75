package middlewarectx

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/middleware"
	"golang.org/x/time/rate"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
)

// DetailTooManyRequests is the 429 detail.
const DetailTooManyRequests = "Too many requests"

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit allows limit requests per client address per window. With a nil
// limiter, or when the limiter fails, an in-process token bucket per address
// is used instead.
func RateLimit(log *slog.Logger, limiter Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	local := newLocalLimiter(limit, window)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RateLimit"
			key := clientKey(r)

			var allowed bool
			if limiter != nil {
				ok, err := limiter.Allow(r.Context(), key, limit, window)
				if err != nil {
					log.Warn("shared rate limiter unavailable, using local limiter",
						slog.String("op", op),
						slog.String("request_id", middleware.GetReqID(r.Context())),
						sl.Err(err))
					ok = local.allow(key)
				}
				allowed = ok
			} else {
				allowed = local.allow(key)
			}

			if !allowed {
				w.Header().Set("Retry-After", retryAfter(window))
				response.Fail(w, r, http.StatusTooManyRequests, DetailTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type localLimiter struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	clients map[string]*rate.Limiter
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	if limit < 1 {
		limit = 1
	}
	return &localLimiter{
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		clients: make(map[string]*rate.Limiter),
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.clients[key]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.clients[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfter(window time.Duration) string {
	secs := int(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
