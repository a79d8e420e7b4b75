// Package hero implements GET /api/hero.
package hero

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	Hero(ctx context.Context) (*models.HeroContent, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Landing page banner
// @Description Returns the stored banner, or the built-in one when none was saved.
// @Tags Site
// @Produce json
// @Success 200 {object} models.HeroContent
// @Router /hero [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.site.hero"

	hero, err := h.service.Hero(r.Context())
	if err != nil {
		h.log.Error("failed to load hero",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, hero)
}
