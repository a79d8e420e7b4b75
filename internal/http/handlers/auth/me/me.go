// Package me implements GET /api/auth/me.
package me

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Handler struct {
	log *slog.Logger
	now func() time.Time
}

func New(log *slog.Logger) *Handler {
	return &Handler{log: log, now: time.Now}
}

// ServeHTTP godoc
// @Summary Current user
// @Description Returns the caller's profile. The admin gets a synthetic one.
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, middlewarectx.DetailNotAuthenticated)
		return
	}

	switch id := identity.(type) {
	case models.UserIdentity:
		render.JSON(w, r, id.User)
	case models.AdminIdentity:
		render.JSON(w, r, id.Profile(h.now().UTC()))
	default:
		h.log.Error("unknown identity type", slog.String("op", "handlers.auth.me"))
		response.Fail(w, r, http.StatusInternalServerError, response.DetailInternal)
	}
}
