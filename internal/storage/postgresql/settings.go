package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

const heroKey = "hero"

// GetHero returns the stored hero content or storage.ErrNotFound.
func (s *Storage) GetHero(ctx context.Context) (*models.HeroContent, error) {
	const op = "storage.postgresql.GetHero"
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, heroKey).Scan(&raw)
	if err != nil {
		return nil, wrap(op, err)
	}
	var hero models.HeroContent
	if err := json.Unmarshal(raw, &hero); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrCorrupt, err)
	}
	if hero.Title == "" || hero.Subtitle == "" || hero.CTAText == "" {
		return nil, fmt.Errorf("%s: %w: hero is missing required fields", op, storage.ErrCorrupt)
	}
	return &hero, nil
}

// SaveHero replaces the hero content.
func (s *Storage) SaveHero(ctx context.Context, hero models.HeroContent) error {
	const op = "storage.postgresql.SaveHero"
	raw, err := json.Marshal(hero)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, heroKey, string(raw))
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// Counts returns the document counts used for the landing page stats.
func (s *Storage) Counts(ctx context.Context) (models.Counts, error) {
	const op = "storage.postgresql.Counts"
	var c models.Counts
	err := s.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT count(*) FROM courses),
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM articles)`,
	).Scan(&c.Courses, &c.Users, &c.Articles)
	if err != nil {
		return models.Counts{}, wrap(op, err)
	}
	return c, nil
}

// ResetContent removes all catalogue content in one transaction. Users, orders
// and settings are kept.
func (s *Storage) ResetContent(ctx context.Context) error {
	const op = "storage.postgresql.ResetContent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"videos", "courses", "articles", "faqs", "live_classes"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("%s: %s: %w", op, table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
