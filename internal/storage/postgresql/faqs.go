package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateFAQ stores a new FAQ entry.
func (s *Storage) CreateFAQ(ctx context.Context, f models.FAQ) error {
	const op = "storage.postgresql.CreateFAQ"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO faqs (id, question, answer, category, sort_order)
		VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.Question, f.Answer, f.Category, f.Order)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// ListFAQs returns FAQs by position, optionally limited to one category.
func (s *Storage) ListFAQs(ctx context.Context, category *string, limit int) ([]models.FAQ, error) {
	const op = "storage.postgresql.ListFAQs"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, question, answer, category, sort_order FROM faqs
		WHERE $1::text IS NULL OR category = $1
		ORDER BY sort_order, seq
		LIMIT $2`, category, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateFAQ overwrites the FAQ entry.
func (s *Storage) UpdateFAQ(ctx context.Context, f models.FAQ) error {
	const op = "storage.postgresql.UpdateFAQ"
	res, err := s.DB.ExecContext(ctx, `
		UPDATE faqs SET question = $2, answer = $3, category = $4, sort_order = $5
		WHERE id = $1`,
		f.ID, f.Question, f.Answer, f.Category, f.Order)
	return affected(op, res, err)
}

// DeleteFAQ removes the FAQ entry.
func (s *Storage) DeleteFAQ(ctx context.Context, id string) error {
	const op = "storage.postgresql.DeleteFAQ"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	return affected(op, res, err)
}
