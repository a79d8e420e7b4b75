// Package google implements POST /api/auth/google. The Google ID token is
// decoded without signature verification.
package google

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
	GoogleLogin(ctx context.Context, token string) (*models.TokenResponse, error)
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.google"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.GoogleLoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.GoogleLogin(r.Context(), req.Token)
	switch {
	case errors.Is(err, auth.ErrInvalidGoogleToken):
		response.Fail(w, r, http.StatusBadRequest, "Invalid Google token")
		return
	case errors.Is(err, auth.ErrGoogleEmailMissing):
		response.Fail(w, r, http.StatusBadRequest, "Email not found in token")
		return
	case err != nil:
		log.Error("google login failed", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	render.JSON(w, r, res)
}
