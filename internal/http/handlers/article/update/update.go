// Package update implements PUT /api/articles/{id}. The path value may be the
// article id or its slug.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/http/response"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/validate"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/article"
)

type Service interface {
	Update(ctx context.Context, idOrSlug string, req models.ArticleRequest) (*models.Article, error)
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
	const op = "handlers.article.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ArticleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.Fail(w, r, http.StatusNotFound, "Article not found")
			return
		}
		log.Error("failed to update article", sl.Err(err))
		response.Internal(w, r, err)
		return
	}
	render.JSON(w, r, res)
}
