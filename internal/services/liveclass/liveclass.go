// Package liveclass manages scheduled live classes and sign-ups.
package liveclass

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var ErrLiveClassNotFound = errors.New("live class not found")

// Repository is the live class part of the store.
type Repository interface {
	CreateLiveClass(ctx context.Context, l models.LiveClass) error
	GetLiveClass(ctx context.Context, id string) (*models.LiveClass, error)
	ListLiveClasses(ctx context.Context, limit int) ([]models.LiveClass, error)
	UpdateLiveClass(ctx context.Context, l models.LiveClass) error
	DeleteLiveClass(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, id string) (*models.LiveClass, error)
}

// LiveClassService implements the live class endpoints.
type LiveClassService struct {
	repo Repository
	now  func() time.Time
}

// NewLiveClassService creates a LiveClassService.
func NewLiveClassService(repo Repository) *LiveClassService {
	return &LiveClassService{repo: repo, now: time.Now}
}

// List returns live classes soonest first.
func (s *LiveClassService) List(ctx context.Context) ([]models.LiveClass, error) {
	const op = "services.liveclass.List"
	classes, err := s.repo.ListLiveClasses(ctx, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return classes, nil
}

// Create stores a new live class. scheduled_at must parse as a timestamp.
func (s *LiveClassService) Create(ctx context.Context, req models.LiveClassRequest) (*models.LiveClass, error) {
	const op = "services.liveclass.Create"
	l := models.LiveClass{ID: uuid.NewString(), CreatedAt: s.now().UTC().Truncate(time.Millisecond)}
	if err := req.Apply(&l); err != nil {
		return nil, err
	}
	if err := s.repo.CreateLiveClass(ctx, l); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

// Update replaces the editable fields. The participant count is kept.
func (s *LiveClassService) Update(ctx context.Context, id string, req models.LiveClassRequest) (*models.LiveClass, error) {
	const op = "services.liveclass.Update"
	l, err := s.repo.GetLiveClass(ctx, id)
	if err != nil {
		return nil, mapErr(op, err)
	}
	if err := req.Apply(l); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLiveClass(ctx, *l); err != nil {
		return nil, mapErr(op, err)
	}
	return l, nil
}

// Delete removes the live class.
func (s *LiveClassService) Delete(ctx context.Context, id string) error {
	const op = "services.liveclass.Delete"
	if err := s.repo.DeleteLiveClass(ctx, id); err != nil {
		return mapErr(op, err)
	}
	return nil
}

// Join counts the caller as a participant and returns the meeting link.
// Capacity is not enforced.
func (s *LiveClassService) Join(ctx context.Context, id string) (*models.LiveClass, error) {
	const op = "services.liveclass.Join"
	l, err := s.repo.IncrementParticipants(ctx, id)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return l, nil
}

func mapErr(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrLiveClassNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
