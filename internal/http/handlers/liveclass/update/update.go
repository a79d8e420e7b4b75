// Package update implements PUT /api/live-classes/{id}.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/liveclass"
)

type Service interface {
	Update(ctx context.Context, id string, req models.LiveClassRequest) (*models.LiveClass, error)
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
	const op = "handlers.liveclass.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LiveClassRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	switch {
	case err == nil:
		render.JSON(w, r, res)
	case errors.Is(err, liveclass.ErrLiveClassNotFound):
		response.Fail(w, r, http.StatusNotFound, "Live class not found")
	case errors.Is(err, models.ErrInvalidTimestamp):
		response.InvalidField(w, r, "scheduled_at", "field scheduled_at must be a datetime")
	default:
		log.Error("failed to update live class", sl.Err(err))
		response.Internal(w, r, err)
	}
}
