// Package remove implements DELETE /api/articles/{id}, by id or slug.
package remove

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
	"github.com/mavecode/mavecode-api/internal/services/article"
)

type Service interface {
	Delete(ctx context.Context, idOrSlug string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	key := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), key); err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Article not found")
			return
		}
		log.Error("failed to delete article", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("article deleted", slog.String("key", key))
	render.JSON(w, r, response.Message("Article deleted"))
}
