// Package create implements POST /api/live-classes.
package create

import (
	"context"
	"errors"
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
	Create(ctx context.Context, req models.LiveClassRequest) (*models.LiveClass, error)
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

// ServeHTTP godoc
// @Summary Schedule a live class
// @Tags Live classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LiveClassRequest true "Live class"
// @Success 200 {object} models.LiveClass
// @Failure 422 {object} response.ValidationResponse
// @Router /live-classes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.liveclass.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LiveClassRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTimestamp) {
			response.InvalidField(w, r, "scheduled_at", "field scheduled_at must be a datetime")
			return
		}
		log.Error("failed to create live class", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("live class scheduled", slog.String("id", res.ID), slog.Time("scheduled_at", res.ScheduledAt))
	render.JSON(w, r, res)
}
