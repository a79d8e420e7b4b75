// Package send implements POST /api/chat.
package send

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
	Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
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
// @Summary Ask the assistant
// @Description A session id is issued when the request has none.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Message"
// @Success 200 {object} models.ChatResponse
// @Router /chat [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ChatRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Send(r.Context(), req)
	if err != nil {
		log.Error("chat provider failed", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, res)
}
