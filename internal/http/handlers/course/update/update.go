// Package update implements PUT /api/courses/{id}.
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
	"github.com/mavecode/mavecode-api/internal/services/course"
)

type Service interface {
	Update(ctx context.Context, id string, req models.CourseRequest) (*models.Course, error)
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
// @Summary Replace a course
// @Description Omitted optional fields are reset to their defaults. updated_at is bumped.
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Param request body models.CourseRequest true "Course"
// @Success 200 {object} models.Course
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.course.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CourseRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	res, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Course not found")
			return
		}
		log.Error("failed to update course", slog.String("id", id), sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, res)
}
