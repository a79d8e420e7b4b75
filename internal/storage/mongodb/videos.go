package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateVideo stores a new video.
func (s *Storage) CreateVideo(ctx context.Context, v models.Video) error {
	const op = "storage.mongodb.CreateVideo"
	if _, err := s.col(colVideos).InsertOne(ctx, v); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetVideo returns the video with the given id.
func (s *Storage) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage.mongodb.GetVideo"
	return decodeOne(op, s.col(colVideos).FindOne(ctx, byID(id)), validVideo)
}

// ListVideos returns the videos of a course by position.
func (s *Storage) ListVideos(ctx context.Context, courseID string, limit int) ([]models.Video, error) {
	const op = "storage.mongodb.ListVideos"
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colVideos), bson.M{"course_id": courseID}, opts, validVideo)
}

// UpdateVideo replaces the stored video.
func (s *Storage) UpdateVideo(ctx context.Context, v models.Video) error {
	const op = "storage.mongodb.UpdateVideo"
	res, err := s.col(colVideos).ReplaceOne(ctx, byID(v.ID), v)
	return matched(op, res, err)
}

// DeleteVideo removes the video.
func (s *Storage) DeleteVideo(ctx context.Context, id string) error {
	const op = "storage.mongodb.DeleteVideo"
	res, err := s.col(colVideos).DeleteOne(ctx, byID(id))
	return deleted(op, res, err)
}

// DeleteVideosByCourse removes every video of a course and reports how many
// were removed.
func (s *Storage) DeleteVideosByCourse(ctx context.Context, courseID string) (int64, error) {
	const op = "storage.mongodb.DeleteVideosByCourse"
	res, err := s.col(colVideos).DeleteMany(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return 0, wrap(op, err)
	}
	return res.DeletedCount, nil
}
