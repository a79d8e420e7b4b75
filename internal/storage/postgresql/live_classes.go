package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

const liveClassColumns = `id, title, description, instructor, scheduled_at, duration_minutes,
	meeting_url, max_participants, participants_count, created_at`

// CreateLiveClass stores a new live class.
func (s *Storage) CreateLiveClass(ctx context.Context, l models.LiveClass) error {
	const op = "storage.postgresql.CreateLiveClass"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO live_classes (`+liveClassColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		l.ID, l.Title, l.Description, l.Instructor, l.ScheduledAt, l.DurationMinutes,
		l.MeetingURL, l.MaxParticipants, l.ParticipantsCount, l.CreatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetLiveClass returns the live class with the given id.
func (s *Storage) GetLiveClass(ctx context.Context, id string) (*models.LiveClass, error) {
	const op = "storage.postgresql.GetLiveClass"
	row := s.DB.QueryRowContext(ctx, `SELECT `+liveClassColumns+` FROM live_classes WHERE id = $1`, id)
	l, err := scanLiveClass(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return l, nil
}

// ListLiveClasses returns live classes soonest first.
func (s *Storage) ListLiveClasses(ctx context.Context, limit int) ([]models.LiveClass, error) {
	const op = "storage.postgresql.ListLiveClasses"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+liveClassColumns+` FROM live_classes
		ORDER BY scheduled_at
		LIMIT $1`, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.LiveClass{}
	for rows.Next() {
		l, err := scanLiveClass(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateLiveClass overwrites the editable fields. The participant count is kept.
func (s *Storage) UpdateLiveClass(ctx context.Context, l models.LiveClass) error {
	const op = "storage.postgresql.UpdateLiveClass"
	res, err := s.DB.ExecContext(ctx, `
		UPDATE live_classes
		SET title = $2, description = $3, instructor = $4, scheduled_at = $5,
		    duration_minutes = $6, meeting_url = $7, max_participants = $8
		WHERE id = $1`,
		l.ID, l.Title, l.Description, l.Instructor, l.ScheduledAt, l.DurationMinutes, l.MeetingURL, l.MaxParticipants)
	return affected(op, res, err)
}

// DeleteLiveClass removes the live class.
func (s *Storage) DeleteLiveClass(ctx context.Context, id string) error {
	const op = "storage.postgresql.DeleteLiveClass"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM live_classes WHERE id = $1`, id)
	return affected(op, res, err)
}

// IncrementParticipants adds one participant and returns the updated class.
func (s *Storage) IncrementParticipants(ctx context.Context, id string) (*models.LiveClass, error) {
	const op = "storage.postgresql.IncrementParticipants"
	row := s.DB.QueryRowContext(ctx, `
		UPDATE live_classes SET participants_count = participants_count + 1
		WHERE id = $1
		RETURNING `+liveClassColumns, id)
	l, err := scanLiveClass(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return l, nil
}

func scanLiveClass(row scanner) (*models.LiveClass, error) {
	var l models.LiveClass
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Instructor, &l.ScheduledAt, &l.DurationMinutes,
		&l.MeetingURL, &l.MaxParticipants, &l.ParticipantsCount, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
