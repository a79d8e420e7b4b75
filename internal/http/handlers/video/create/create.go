// Package create implements POST /api/videos.
package create

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
	CreateVideo(ctx context.Context, req models.VideoRequest) (*models.Video, error)
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
// @Summary Add a lesson to a course
// @Tags Videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.VideoRequest true "Video"
// @Success 200 {object} models.Video
// @Failure 422 {object} response.ValidationResponse
// @Router /videos [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.VideoRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.CreateVideo(r.Context(), req)
	if err != nil {
		log.Error("failed to create video", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("video created", slog.String("id", res.ID), slog.String("course_id", res.CourseID))
	render.JSON(w, r, res)
}
