package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateCourse stores a new course.
func (s *Storage) CreateCourse(ctx context.Context, c models.Course) error {
	const op = "storage.mongodb.CreateCourse"
	if _, err := s.col(colCourses).InsertOne(ctx, c); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetCourse returns the course with the given id.
func (s *Storage) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	const op = "storage.mongodb.GetCourse"
	return decodeOne(op, s.col(colCourses).FindOne(ctx, byID(id)), validCourse)
}

// ListCourses returns courses in insertion order.
func (s *Storage) ListCourses(ctx context.Context, filter models.CourseFilter, limit int) ([]models.Course, error) {
	const op = "storage.mongodb.ListCourses"
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.IsFree != nil {
		query["is_free"] = *filter.IsFree
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "$natural", Value: 1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colCourses), query, opts, validCourse)
}

// UpdateCourse replaces the stored course.
func (s *Storage) UpdateCourse(ctx context.Context, c models.Course) error {
	const op = "storage.mongodb.UpdateCourse"
	res, err := s.col(colCourses).ReplaceOne(ctx, byID(c.ID), c)
	return matched(op, res, err)
}

// DeleteCourse removes the course. Its videos are left to the caller.
func (s *Storage) DeleteCourse(ctx context.Context, id string) error {
	const op = "storage.mongodb.DeleteCourse"
	res, err := s.col(colCourses).DeleteOne(ctx, byID(id))
	return deleted(op, res, err)
}
