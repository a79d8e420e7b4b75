// Package read implements GET /api/courses/{id}.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/course"
)

type Service interface {
	Read(ctx context.Context, id string) (*models.Course, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Read(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Course not found")
			return
		}
		log.Error("failed to read course", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, res)
}
