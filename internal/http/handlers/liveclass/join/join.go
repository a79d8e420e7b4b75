// Package join implements POST /api/live-classes/{id}/join.
package join

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/liveclass"
)

type Service interface {
	Join(ctx context.Context, id string) (*models.LiveClass, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

// Response carries the link the participant should open.
type Response struct {
	Message    string  `json:"message" example:"Joined successfully"`
	MeetingURL *string `json:"meeting_url"`
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Join a live class
// @Description Increments the participant count. Capacity is not enforced.
// @Tags Live classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Live class id"
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Live class not found"
// @Router /live-classes/{id}/join [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.liveclass.join"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	class, err := h.service.Join(r.Context(), id)
	if err != nil {
		if errors.Is(err, liveclass.ErrLiveClassNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Live class not found")
			return
		}
		log.Error("failed to join live class", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	if caller, ok := middlewarectx.IdentityFrom(r.Context()); ok {
		log.Info("participant joined",
			slog.String("live_class_id", id),
			slog.String("user_id", caller.SubjectID()),
			slog.Int("participants", class.ParticipantsCount))
	}
	render.JSON(w, r, Response{Message: "Joined successfully", MeetingURL: class.MeetingURL})
}
