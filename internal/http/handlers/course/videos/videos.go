// Package videos implements GET /api/courses/{id}/videos.
package videos

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	Videos(ctx context.Context, courseID string) ([]models.Video, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP lists the curriculum in lesson order. An unknown course yields an
// empty list.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.videos"

	videos, err := h.service.Videos(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.log.Error("failed to list videos",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}
	render.JSON(w, r, videos)
}
