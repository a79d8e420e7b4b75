package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateContactMessage stores a message from the contact form.
func (s *Storage) CreateContactMessage(ctx context.Context, m models.ContactMessage) error {
	const op = "storage.mongodb.CreateContactMessage"
	if _, err := s.col(colContact).InsertOne(ctx, m); err != nil {
		return wrap(op, err)
	}
	return nil
}

// ListContactMessages returns the newest messages first.
func (s *Storage) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	const op = "storage.mongodb.ListContactMessages"
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colContact), bson.D{}, opts, validContact)
}
