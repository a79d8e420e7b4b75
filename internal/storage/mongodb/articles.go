package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateArticle stores a new article. A taken slug yields storage.ErrConflict.
func (s *Storage) CreateArticle(ctx context.Context, a models.Article) error {
	const op = "storage.mongodb.CreateArticle"
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if _, err := s.col(colArticles).InsertOne(ctx, a); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetArticle returns the article with the given id.
func (s *Storage) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	const op = "storage.mongodb.GetArticle"
	return decodeOne(op, s.col(colArticles).FindOne(ctx, byID(id)), validArticle)
}

// GetArticleBySlug returns the article with the given slug without counting a view.
func (s *Storage) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.mongodb.GetArticleBySlug"
	return decodeOne(op, s.col(colArticles).FindOne(ctx, bson.M{"slug": slug}), validArticle)
}

// IncrementArticleViews adds one view and returns the article as stored after
// the increment.
func (s *Storage) IncrementArticleViews(ctx context.Context, slug string) (*models.Article, error) {
	const op = "storage.mongodb.IncrementArticleViews"
	res := s.col(colArticles).FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		afterUpdate(),
	)
	return decodeOne(op, res, validArticle)
}

// ListArticles returns the newest articles first.
func (s *Storage) ListArticles(ctx context.Context, filter models.ArticleFilter, limit int) ([]models.Article, error) {
	const op = "storage.mongodb.ListArticles"
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Tag != nil {
		query["tags"] = *filter.Tag
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colArticles), query, opts, validArticle)
}

// UpdateArticle overwrites the editable fields of the article. Slug and views
// are kept.
func (s *Storage) UpdateArticle(ctx context.Context, a models.Article) error {
	const op = "storage.mongodb.UpdateArticle"
	if a.Tags == nil {
		a.Tags = []string{}
	}
	res, err := s.col(colArticles).UpdateOne(ctx, byID(a.ID), bson.M{"$set": bson.M{
		"title":      a.Title,
		"content":    a.Content,
		"excerpt":    a.Excerpt,
		"thumbnail":  a.Thumbnail,
		"category":   a.Category,
		"tags":       a.Tags,
		"author":     a.Author,
		"updated_at": a.UpdatedAt,
	}})
	return matched(op, res, err)
}

// DeleteArticle removes the article with the given id.
func (s *Storage) DeleteArticle(ctx context.Context, id string) error {
	const op = "storage.mongodb.DeleteArticle"
	res, err := s.col(colArticles).DeleteOne(ctx, byID(id))
	return deleted(op, res, err)
}
