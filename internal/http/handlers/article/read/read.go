// Package read implements GET /api/articles/{slug}. Every successful read
// counts as one view.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/article"
)

type Service interface {
	View(ctx context.Context, slug string) (*models.Article, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Read article
// @Description Returns the article and counts the view.
// @Tags Articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Article
// @Failure 404 {object} response.ErrorResponse
// @Router /articles/{slug} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.View(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Article not found")
			return
		}
		log.Error("failed to read article", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, res)
}
