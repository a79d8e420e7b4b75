// Package article manages blog articles.
package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/lib/slug"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("slug already exists")
)

// Repository is the article part of the store.
type Repository interface {
	CreateArticle(ctx context.Context, a models.Article) error
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	IncrementArticleViews(ctx context.Context, slug string) (*models.Article, error)
	ListArticles(ctx context.Context, filter models.ArticleFilter, limit int) ([]models.Article, error)
	UpdateArticle(ctx context.Context, a models.Article) error
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleService implements the article endpoints.
type ArticleService struct {
	repo Repository
	now  func() time.Time
}

// NewArticleService creates an ArticleService.
func NewArticleService(repo Repository) *ArticleService {
	return &ArticleService{repo: repo, now: time.Now}
}

// List returns the newest articles first.
func (s *ArticleService) List(ctx context.Context, filter models.ArticleFilter) ([]models.Article, error) {
	const op = "services.article.List"
	articles, err := s.repo.ListArticles(ctx, filter, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

// View counts a read of the article and returns it with the new view count.
func (s *ArticleService) View(ctx context.Context, slug string) (*models.Article, error) {
	const op = "services.article.View"
	a, err := s.repo.IncrementArticleViews(ctx, slug)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return a, nil
}

// Create stores a new article under a slug derived from the title and id.
func (s *ArticleService) Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error) {
	const op = "services.article.Create"
	now := s.now().UTC().Truncate(time.Millisecond)
	id := uuid.NewString()
	a := models.Article{
		ID:        id,
		Slug:      slug.WithID(req.Title, id),
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(&a)

	if err := s.repo.CreateArticle(ctx, a); err != nil {
		return nil, mapErr(op, err)
	}
	return &a, nil
}

// Update replaces the editable fields of the article addressed by id or slug.
// The slug never changes.
func (s *ArticleService) Update(ctx context.Context, idOrSlug string, req models.ArticleRequest) (*models.Article, error) {
	const op = "services.article.Update"
	a, err := s.find(ctx, idOrSlug)
	if err != nil {
		return nil, mapErr(op, err)
	}
	req.Apply(a)
	a.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	if err := s.repo.UpdateArticle(ctx, *a); err != nil {
		return nil, mapErr(op, err)
	}
	return a, nil
}

// Delete removes the article addressed by id or slug.
func (s *ArticleService) Delete(ctx context.Context, idOrSlug string) error {
	const op = "services.article.Delete"
	a, err := s.find(ctx, idOrSlug)
	if err != nil {
		return mapErr(op, err)
	}
	if err := s.repo.DeleteArticle(ctx, a.ID); err != nil {
		return mapErr(op, err)
	}
	return nil
}

func (s *ArticleService) find(ctx context.Context, idOrSlug string) (*models.Article, error) {
	a, err := s.repo.GetArticle(ctx, idOrSlug)
	if errors.Is(err, storage.ErrNotFound) {
		return s.repo.GetArticleBySlug(ctx, idOrSlug)
	}
	return a, err
}

func mapErr(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrArticleNotFound
	case errors.Is(err, storage.ErrConflict):
		return ErrSlugTaken
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
