// Package contact stores messages from the contact form and forwards them to
// the notification queue.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

// Repository is the contact part of the store.
type Repository interface {
	CreateContactMessage(ctx context.Context, m models.ContactMessage) error
	ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error)
}

// EventPublisher delivers domain events.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg any) error
}

// ContactService implements the contact endpoints.
type ContactService struct {
	repo   Repository
	events EventPublisher
	log    *slog.Logger
	now    func() time.Time
}

// NewContactService creates a ContactService.
func NewContactService(repo Repository, events EventPublisher, log *slog.Logger) *ContactService {
	return &ContactService{repo: repo, events: events, log: log, now: time.Now}
}

// Send stores the message unread and returns its id.
func (s *ContactService) Send(ctx context.Context, req models.ContactRequest) (string, error) {
	const op = "services.contact.Send"

	m := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.CreateContactMessage(ctx, m); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	event := models.ContactReceivedEvent{ID: m.ID, Name: m.Name, Email: m.Email, Subject: m.Subject, Message: m.Message}
	if err := s.events.Publish(ctx, models.EventContactReceived, event); err != nil {
		s.log.Warn("failed to publish contact event",
			slog.String("op", op), slog.String("message_id", m.ID), sl.Err(err))
	}
	return m.ID, nil
}

// List returns messages newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "services.contact.List"
	msgs, err := s.repo.ListContactMessages(ctx, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return msgs, nil
}
