package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateContactMessage stores a message from the contact form.
func (s *Storage) CreateContactMessage(ctx context.Context, m models.ContactMessage) error {
	const op = "storage.postgresql.CreateContactMessage"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Read, m.CreatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// ListContactMessages returns the newest messages first.
func (s *Storage) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	const op = "storage.postgresql.ListContactMessages"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, email, subject, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1`, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
