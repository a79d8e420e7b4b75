package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateLiveClass stores a new live class.
func (s *Storage) CreateLiveClass(ctx context.Context, l models.LiveClass) error {
	const op = "storage.mongodb.CreateLiveClass"
	if _, err := s.col(colLiveClasses).InsertOne(ctx, l); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetLiveClass returns the live class with the given id.
func (s *Storage) GetLiveClass(ctx context.Context, id string) (*models.LiveClass, error) {
	const op = "storage.mongodb.GetLiveClass"
	return decodeOne(op, s.col(colLiveClasses).FindOne(ctx, byID(id)), validLiveClass)
}

// ListLiveClasses returns live classes soonest first.
func (s *Storage) ListLiveClasses(ctx context.Context, limit int) ([]models.LiveClass, error) {
	const op = "storage.mongodb.ListLiveClasses"
	opts := options.Find().
		SetSort(bson.D{{Key: "scheduled_at", Value: 1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colLiveClasses), bson.M{}, opts, validLiveClass)
}

// UpdateLiveClass overwrites the editable fields. The participant count is kept.
func (s *Storage) UpdateLiveClass(ctx context.Context, l models.LiveClass) error {
	const op = "storage.mongodb.UpdateLiveClass"
	res, err := s.col(colLiveClasses).UpdateOne(ctx, byID(l.ID), bson.M{"$set": bson.M{
		"title":            l.Title,
		"description":      l.Description,
		"instructor":       l.Instructor,
		"scheduled_at":     l.ScheduledAt,
		"duration_minutes": l.DurationMinutes,
		"meeting_url":      l.MeetingURL,
		"max_participants": l.MaxParticipants,
	}})
	return matched(op, res, err)
}

// DeleteLiveClass removes the live class.
func (s *Storage) DeleteLiveClass(ctx context.Context, id string) error {
	const op = "storage.mongodb.DeleteLiveClass"
	res, err := s.col(colLiveClasses).DeleteOne(ctx, byID(id))
	return deleted(op, res, err)
}

// IncrementParticipants adds one participant and returns the updated class.
func (s *Storage) IncrementParticipants(ctx context.Context, id string) (*models.LiveClass, error) {
	const op = "storage.mongodb.IncrementParticipants"
	res := s.col(colLiveClasses).FindOneAndUpdate(ctx,
		byID(id),
		bson.M{"$inc": bson.M{"participants_count": 1}},
		afterUpdate(),
	)
	return decodeOne(op, res, validLiveClass)
}
