// Package create implements POST /api/articles.
package create

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
	"github.com/mavecode/mavecode-api/internal/services/article"
)

type Service interface {
	Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error)
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
// @Summary Publish an article
// @Description The slug is derived from the title.
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ArticleRequest true "Article"
// @Success 200 {object} models.Article
// @Failure 400 {object} response.ErrorResponse "Slug already exists"
// @Failure 422 {object} response.ValidationResponse
// @Router /articles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ArticleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Invalid(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Invalid(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, article.ErrSlugTaken) {
			response.Fail(w, r, http.StatusBadRequest, "Slug already exists")
			return
		}
		log.Error("failed to create article", sl.Err(err))
		response.Internal(w, r, err)
		return
	}

	log.Info("article created", slog.String("slug", res.Slug))
	render.JSON(w, r, res)
}
