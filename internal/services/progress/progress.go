// Package progress records how far users got through course videos.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

// Repository is the progress part of the store.
type Repository interface {
	UpsertProgress(ctx context.Context, p models.Progress) (*models.Progress, error)
	ListProgress(ctx context.Context, userID, courseID string, limit int) ([]models.Progress, error)
}

// ProgressService implements the progress endpoints.
type ProgressService struct {
	repo Repository
	now  func() time.Time
}

// NewProgressService creates a ProgressService.
func NewProgressService(repo Repository) *ProgressService {
	return &ProgressService{repo: repo, now: time.Now}
}

// Save creates or overwrites the record for (userID, course, video). Course
// and video ids are not checked against the catalogue.
func (s *ProgressService) Save(ctx context.Context, userID string, req models.ProgressRequest) (*models.Progress, error) {
	const op = "services.progress.Save"
	p, err := s.repo.UpsertProgress(ctx, models.Progress{
		ID:              uuid.NewString(),
		UserID:          userID,
		CourseID:        req.CourseID,
		VideoID:         req.VideoID,
		Completed:       req.Completed,
		ProgressPercent: req.ProgressPercent,
		UpdatedAt:       s.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// List returns the records of userID for one course.
func (s *ProgressService) List(ctx context.Context, userID, courseID string) ([]models.Progress, error) {
	const op = "services.progress.List"
	records, err := s.repo.ListProgress(ctx, userID, courseID, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}
