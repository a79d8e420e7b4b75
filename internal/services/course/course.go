// Package course manages the course catalogue and the videos of each course.
package course

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrVideoNotFound  = errors.New("video not found")
)

// Repository is the course and video part of the store.
type Repository interface {
	CreateCourse(ctx context.Context, c models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, filter models.CourseFilter, limit int) ([]models.Course, error)
	UpdateCourse(ctx context.Context, c models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	CreateVideo(ctx context.Context, v models.Video) error
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	ListVideos(ctx context.Context, courseID string, limit int) ([]models.Video, error)
	UpdateVideo(ctx context.Context, v models.Video) error
	DeleteVideo(ctx context.Context, id string) error
	DeleteVideosByCourse(ctx context.Context, courseID string) (int64, error)
}

// CourseService implements the course and video endpoints.
type CourseService struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewCourseService creates a CourseService.
func NewCourseService(repo Repository, log *slog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log, now: time.Now}
}

func (s *CourseService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// List returns courses matching filter in insertion order.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	const op = "services.course.List"
	courses, err := s.repo.ListCourses(ctx, filter, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return courses, nil
}

// Read returns one course.
func (s *CourseService) Read(ctx context.Context, id string) (*models.Course, error) {
	const op = "services.course.Read"
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, notFound(op, err, ErrCourseNotFound)
	}
	return c, nil
}

// Create stores a new course. created_at and updated_at start out equal.
func (s *CourseService) Create(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	const op = "services.course.Create"
	now := s.timestamp()
	c := models.Course{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	req.Apply(&c)

	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// Update replaces the editable fields of a course and bumps updated_at.
func (s *CourseService) Update(ctx context.Context, id string, req models.CourseRequest) (*models.Course, error) {
	const op = "services.course.Update"
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, notFound(op, err, ErrCourseNotFound)
	}
	req.Apply(c)
	c.UpdatedAt = s.timestamp()

	if err := s.repo.UpdateCourse(ctx, *c); err != nil {
		return nil, notFound(op, err, ErrCourseNotFound)
	}
	return c, nil
}

// Delete removes a course and then its videos. The two writes are not atomic:
// a failure removing videos is logged and leaves them orphaned.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	const op = "services.course.Delete"
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		return notFound(op, err, ErrCourseNotFound)
	}

	n, err := s.repo.DeleteVideosByCourse(ctx, id)
	if err != nil {
		s.log.Error("failed to delete course videos",
			slog.String("op", op), slog.String("course_id", id), sl.Err(err))
		return nil
	}
	s.log.Debug("course deleted", slog.String("course_id", id), slog.Int64("videos", n))
	return nil
}

// Videos lists the videos of a course by position. An unknown course has no
// videos.
func (s *CourseService) Videos(ctx context.Context, courseID string) ([]models.Video, error) {
	const op = "services.course.Videos"
	videos, err := s.repo.ListVideos(ctx, courseID, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return videos, nil
}

// Video returns one video.
func (s *CourseService) Video(ctx context.Context, id string) (*models.Video, error) {
	const op = "services.course.Video"
	v, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, notFound(op, err, ErrVideoNotFound)
	}
	return v, nil
}

// CreateVideo stores a new video. The course is not required to exist.
func (s *CourseService) CreateVideo(ctx context.Context, req models.VideoRequest) (*models.Video, error) {
	const op = "services.course.CreateVideo"
	v := models.Video{ID: uuid.NewString(), CreatedAt: s.timestamp()}
	req.Apply(&v)

	if err := s.repo.CreateVideo(ctx, v); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}

// UpdateVideo replaces the editable fields of a video.
func (s *CourseService) UpdateVideo(ctx context.Context, id string, req models.VideoRequest) (*models.Video, error) {
	const op = "services.course.UpdateVideo"
	v, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, notFound(op, err, ErrVideoNotFound)
	}
	req.Apply(v)

	if err := s.repo.UpdateVideo(ctx, *v); err != nil {
		return nil, notFound(op, err, ErrVideoNotFound)
	}
	return v, nil
}

// DeleteVideo removes a video.
func (s *CourseService) DeleteVideo(ctx context.Context, id string) error {
	const op = "services.course.DeleteVideo"
	if err := s.repo.DeleteVideo(ctx, id); err != nil {
		return notFound(op, err, ErrVideoNotFound)
	}
	return nil
}

// notFound replaces storage.ErrNotFound with the domain error and wraps
// everything else.
func notFound(op string, err, domain error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return domain
	}
	return fmt.Errorf("%s: %w", op, err)
}
