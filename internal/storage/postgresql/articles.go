package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

const articleColumns = `id, slug, title, content, excerpt, thumbnail, category, tags, author, views,
	created_at, updated_at`

// CreateArticle stores a new article. A taken slug yields storage.ErrConflict.
func (s *Storage) CreateArticle(ctx context.Context, a models.Article) error {
	const op = "storage.postgresql.CreateArticle"
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11, $12)`,
		a.ID, a.Slug, a.Title, a.Content, a.Excerpt, a.Thumbnail, a.Category, tags, a.Author, a.Views,
		a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetArticle returns the article with the given id.
func (s *Storage) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	const op = "storage.postgresql.GetArticle"
	row := s.DB.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return a, nil
}

// GetArticleBySlug returns the article with the given slug without counting a view.
func (s *Storage) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.postgresql.GetArticleBySlug"
	row := s.DB.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	a, err := scanArticle(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return a, nil
}

// IncrementArticleViews adds one view and returns the article as stored after
// the increment.
func (s *Storage) IncrementArticleViews(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.postgresql.IncrementArticleViews"
	row := s.DB.QueryRowContext(ctx, `
		UPDATE articles SET views = views + 1
		WHERE slug = $1
		RETURNING `+articleColumns, slug)
	a, err := scanArticle(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return a, nil
}

// ListArticles returns the newest articles first.
func (s *Storage) ListArticles(ctx context.Context, filter models.ArticleFilter, limit int) ([]models.Article, error) {
	const op = "storage.postgresql.ListArticles"

	var (
		where []string
		args  []any
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Tag != nil {
		args = append(args, *filter.Tag)
		where = append(where, fmt.Sprintf("tags @> jsonb_build_array($%d::text)", len(args)))
	}
	query := `SELECT ` + articleColumns + ` FROM articles`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limitOf(limit))
	query += fmt.Sprintf(` ORDER BY created_at DESC, seq DESC LIMIT $%d`, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateArticle overwrites the editable fields of the article. Slug and views
// are kept.
func (s *Storage) UpdateArticle(ctx context.Context, a models.Article) error {
	const op = "storage.postgresql.UpdateArticle"
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE articles
		SET title = $2, content = $3, excerpt = $4, thumbnail = $5, category = $6,
		    tags = $7::jsonb, author = $8, updated_at = $9
		WHERE id = $1`,
		a.ID, a.Title, a.Content, a.Excerpt, a.Thumbnail, a.Category, tags, a.Author, a.UpdatedAt)
	return affected(op, res, err)
}

// DeleteArticle removes the article with the given id.
func (s *Storage) DeleteArticle(ctx context.Context, id string) error {
	const op = "storage.postgresql.DeleteArticle"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return affected(op, res, err)
}

func scanArticle(row scanner) (*models.Article, error) {
	var (
		a    models.Article
		tags []byte
	)
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Content, &a.Excerpt, &a.Thumbnail, &a.Category, &tags,
		&a.Author, &a.Views, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &a.Tags); err != nil {
		return nil, fmt.Errorf("%w: tags of article %s: %v", storage.ErrCorrupt, a.ID, err)
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
