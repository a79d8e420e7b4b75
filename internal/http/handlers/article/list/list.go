// Package list implements GET /api/articles.
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
	List(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List articles
// @Tags Articles
// @Produce json
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Success 200 {array} models.Article
// @Router /articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"

	var filter models.ArticleFilter
	if c := r.URL.Query().Get("category"); c != "" {
		filter.Category = &c
	}
	if t := r.URL.Query().Get("tag"); t != "" {
		filter.Tag = &t
	}

	articles, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to list articles",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, articles)
}
