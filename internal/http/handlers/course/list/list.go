// Package list implements GET /api/courses.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param category query string false "Category id"
// @Param is_free query bool false "Only free or only paid courses"
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var filter models.CourseFilter
	q := r.URL.Query()
	if c := q.Get("category"); c != "" {
		filter.Category = &c
	}
	if raw := q.Get("is_free"); raw != "" {
		free, err := strconv.ParseBool(raw)
		if err != nil {
			response.InvalidField(w, r, "is_free", "field is_free must be a boolean")
			return
		}
		filter.IsFree = &free
	}

	courses, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list courses", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, courses)
}
