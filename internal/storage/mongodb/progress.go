package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// UpsertProgress writes the progress of a user on one video. An existing
// document for the same (user, course, video) keeps its id and is overwritten.
func (s *Storage) UpsertProgress(ctx context.Context, p models.Progress) (*models.Progress, error) {
	const op = "storage.mongodb.UpsertProgress"
	res := s.col(colProgress).FindOneAndUpdate(ctx,
		bson.M{"user_id": p.UserID, "course_id": p.CourseID, "video_id": p.VideoID},
		bson.M{
			"$set": bson.M{
				"completed":        p.Completed,
				"progress_percent": p.ProgressPercent,
				"updated_at":       p.UpdatedAt,
			},
			"$setOnInsert": bson.M{"_id": p.ID},
		},
		afterUpdate().SetUpsert(true),
	)
	return decodeOne(op, res, validProgress)
}

// ListProgress returns the progress documents of a user within one course.
func (s *Storage) ListProgress(ctx context.Context, userID, courseID string, limit int) ([]models.Progress, error) {
	const op = "storage.mongodb.ListProgress"
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: 1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colProgress), bson.M{"user_id": userID, "course_id": courseID}, opts, validProgress)
}
