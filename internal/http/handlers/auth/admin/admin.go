// Package admin implements POST /api/auth/admin, the login of the single
// configured admin account.
package admin

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

type Service interface {
	AdminLogin(ctx context.Context, req models.AdminLoginRequest) (string, error)
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
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} models.AdminTokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid admin credentials"
// @Router /auth/admin [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.admin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AdminLoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	token, err := h.service.AdminLogin(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidAdminCredential) {
			log.Warn("admin login rejected", slog.String("username", req.Username))
			response.Fail(w, r, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		log.Error("admin login failed", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	render.JSON(w, r, models.AdminTokenResponse{Token: token, IsAdmin: true})
}
