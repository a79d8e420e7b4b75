// Package updatehero implements PUT /api/hero.
package updatehero

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	UpdateHero(ctx context.Context, hero models.HeroContent) error
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.site.updatehero"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var hero models.HeroContent
	if err := render.DecodeJSON(r.Body, &hero); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(hero); err != nil {
		response.Invalid(w, r, err)
		return
	}

	if err := h.service.UpdateHero(r.Context(), hero); err != nil {
		log.Error("failed to save hero", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("hero updated")
	render.JSON(w, r, response.Message("Hero content updated"))
}
