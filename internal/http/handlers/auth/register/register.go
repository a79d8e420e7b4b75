// Package register implements POST /api/auth/register.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/auth"
)

// Service creates accounts.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error)
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
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Email already registered"
// @Failure 422 {object} response.ValidationResponse
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterRequest
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

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			response.Fail(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error("registration failed", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("user registered", slog.String("user_id", res.User.ID))
	render.JSON(w, r, res)
}
