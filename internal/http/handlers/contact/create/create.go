// Package create implements POST /api/contact.
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
	Send(ctx context.Context, req models.ContactRequest) (string, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Response acknowledges the stored message.
type Response struct {
	Message string `json:"message" example:"Message sent successfully"`
	ID      string `json:"id"`
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Leave a message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 200 {object} Response
// @Failure 422 {object} response.ValidationResponse
// @Router /contact [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ContactRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}

	id, err := h.service.Send(r.Context(), req)
	if err != nil {
		log.Error("failed to store contact message", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("contact message stored", slog.String("id", id))
	render.JSON(w, r, Response{Message: "Message sent successfully", ID: id})
}
