// Package save implements POST /api/progress.
package save

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	Save(ctx context.Context, userID string, req models.ProgressRequest) (*models.Progress, error)
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
// @Summary Record progress on a video
// @Description Creates or replaces the caller's record for the (course, video) pair.
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProgressRequest true "Progress"
// @Success 200 {object} response.MessageResponse
// @Router /progress [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.progress.save"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	caller, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, middlewarectx.DetailNotAuthenticated)
		return
	}

	var req models.ProgressRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	if _, err := h.service.Save(r.Context(), caller.SubjectID(), req); err != nil {
		log.Error("failed to save progress", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, response.Message("Progress updated"))
}
