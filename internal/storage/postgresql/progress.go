package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

// UpsertProgress writes the progress of a user on one video. An existing row
// for the same (user, course, video) keeps its id and is overwritten.
func (s *Storage) UpsertProgress(ctx context.Context, p models.Progress) (*models.Progress, error) {
	const op = "storage.postgresql.UpsertProgress"
	var out models.Progress
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO progress (id, user_id, course_id, video_id, completed, progress_percent, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, course_id, video_id) DO UPDATE
		SET completed = EXCLUDED.completed,
		    progress_percent = EXCLUDED.progress_percent,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, course_id, video_id, completed, progress_percent, updated_at`,
		p.ID, p.UserID, p.CourseID, p.VideoID, p.Completed, p.ProgressPercent, p.UpdatedAt,
	).Scan(&out.ID, &out.UserID, &out.CourseID, &out.VideoID, &out.Completed, &out.ProgressPercent, &out.UpdatedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &out, nil
}

// ListProgress returns the progress rows of a user within one course.
func (s *Storage) ListProgress(ctx context.Context, userID, courseID string, limit int) ([]models.Progress, error) {
	const op = "storage.postgresql.ListProgress"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, user_id, course_id, video_id, completed, progress_percent, updated_at
		FROM progress
		WHERE user_id = $1 AND course_id = $2
		ORDER BY updated_at
		LIMIT $3`, userID, courseID, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.Progress{}
	for rows.Next() {
		var p models.Progress
		if err := rows.Scan(&p.ID, &p.UserID, &p.CourseID, &p.VideoID, &p.Completed, &p.ProgressPercent, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
