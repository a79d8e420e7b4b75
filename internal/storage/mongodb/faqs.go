package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateFAQ stores a new FAQ entry.
func (s *Storage) CreateFAQ(ctx context.Context, f models.FAQ) error {
	const op = "storage.mongodb.CreateFAQ"
	if _, err := s.col(colFAQs).InsertOne(ctx, f); err != nil {
		return wrap(op, err)
	}
	return nil
}

// ListFAQs returns FAQs by position, optionally limited to one category.
func (s *Storage) ListFAQs(ctx context.Context, category *string, limit int) ([]models.FAQ, error) {
	const op = "storage.mongodb.ListFAQs"
	query := bson.M{}
	if category != nil {
		query["category"] = *category
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colFAQs), query, opts, validFAQ)
}

// UpdateFAQ replaces the FAQ entry.
func (s *Storage) UpdateFAQ(ctx context.Context, f models.FAQ) error {
	const op = "storage.mongodb.UpdateFAQ"
	res, err := s.col(colFAQs).ReplaceOne(ctx, byID(f.ID), f)
	return matched(op, res, err)
}

// DeleteFAQ removes the FAQ entry.
func (s *Storage) DeleteFAQ(ctx context.Context, id string) error {
	const op = "storage.mongodb.DeleteFAQ"
	res, err := s.col(colFAQs).DeleteOne(ctx, byID(id))
	return deleted(op, res, err)
}
