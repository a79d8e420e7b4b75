// Package remove implements DELETE /api/courses/{id}. The course's videos
// are deleted with it.
package remove

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
	"github.com/mavecode/mavecode-api/internal/services/course"
)

type Service interface {
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Course not found")
			return
		}
		log.Error("failed to delete course", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("course deleted", slog.String("id", id))
	render.JSON(w, r, response.Message("Course deleted"))
}
