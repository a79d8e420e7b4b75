// Package faq manages frequently asked questions.
package faq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var ErrFAQNotFound = errors.New("faq not found")

// Repository is the FAQ part of the store.
type Repository interface {
	CreateFAQ(ctx context.Context, f models.FAQ) error
	ListFAQs(ctx context.Context, category *string, limit int) ([]models.FAQ, error)
	UpdateFAQ(ctx context.Context, f models.FAQ) error
	DeleteFAQ(ctx context.Context, id string) error
}

// FAQService implements the FAQ endpoints.
type FAQService struct {
	repo Repository
}

// NewFAQService creates a FAQService.
func NewFAQService(repo Repository) *FAQService {
	return &FAQService{repo: repo}
}

// List returns FAQs by position.
func (s *FAQService) List(ctx context.Context, category *string) ([]models.FAQ, error) {
	const op = "services.faq.List"
	faqs, err := s.repo.ListFAQs(ctx, category, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return faqs, nil
}

// Create stores a new FAQ.
func (s *FAQService) Create(ctx context.Context, req models.FAQRequest) (*models.FAQ, error) {
	const op = "services.faq.Create"
	f := models.FAQ{ID: uuid.NewString()}
	req.Apply(&f)
	if err := s.repo.CreateFAQ(ctx, f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}

// Update replaces the FAQ. Omitted optional fields fall back to defaults.
func (s *FAQService) Update(ctx context.Context, id string, req models.FAQRequest) (*models.FAQ, error) {
	const op = "services.faq.Update"
	f := models.FAQ{ID: id}
	req.Apply(&f)
	if err := s.repo.UpdateFAQ(ctx, f); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrFAQNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}

// Delete removes the FAQ.
func (s *FAQService) Delete(ctx context.Context, id string) error {
	const op = "services.faq.Delete"
	if err := s.repo.DeleteFAQ(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrFAQNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
