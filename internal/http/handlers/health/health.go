// Package health implements GET /health.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
)

// Store states.
const (
	StoreUp          = "up"
	StoreDown        = "down"
	StoreMaintenance = "maintenance"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Response is the body of GET /health. The process is alive whenever it
// answers; Store tells whether store-backed routes will work.
type Response struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"up"`
}

type Handler struct {
	log   *slog.Logger
	store Pinger
}

// New creates the handler. A nil store means the API runs in maintenance mode.
func New(log *slog.Logger, store Pinger) *Handler {
	return &Handler{log: log, store: store}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	res := Response{Status: "ok", Store: StoreMaintenance}
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		res.Store = StoreUp
		if err := h.store.Ping(ctx); err != nil {
			h.log.Warn("store ping failed", slog.String("op", op), sl.Err(err))
			res.Store = StoreDown
		}
	}
	render.JSON(w, r, res)
}
