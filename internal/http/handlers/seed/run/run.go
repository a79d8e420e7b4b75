// Package run implements POST /api/seed.
package run

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
)

type Seeder interface {
	Seed(ctx context.Context) error
}

type Handler struct {
	log    *slog.Logger
	seeder Seeder
}

func New(log *slog.Logger, seeder Seeder) *Handler {
	return &Handler{log: log, seeder: seeder}
}

// ServeHTTP godoc
// @Summary Replace content with the demo set
// @Description Drops courses, videos, articles, FAQs and live classes, then loads the built-in demo data.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Router /seed [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.seed.run"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.seeder.Seed(r.Context()); err != nil {
		log.Error("seeding failed", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, response.Message("Seed data created successfully"))
}
