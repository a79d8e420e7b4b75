// Package list implements GET /api/faqs.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
)

type Service interface {
	List(ctx context.Context, category *string) ([]models.FAQ, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List FAQs
// @Tags FAQs
// @Produce json
// @Param category query string false "Category"
// @Success 200 {array} models.FAQ
// @Router /faqs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.faq.list"

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	faqs, err := h.service.List(r.Context(), category)
	if err != nil {
		h.log.Error("failed to list faqs",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, faqs)
}
