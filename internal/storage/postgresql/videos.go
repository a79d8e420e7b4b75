package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

const videoColumns = `id, course_id, title, description, video_url, duration_minutes, sort_order,
	is_preview, type, created_at`

// CreateVideo stores a new lesson.
func (s *Storage) CreateVideo(ctx context.Context, v models.Video) error {
	const op = "storage.postgresql.CreateVideo"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO videos (`+videoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.CourseID, v.Title, v.Description, v.VideoURL, v.DurationMinutes, v.Order,
		v.IsPreview, v.Type, v.CreatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetVideo returns the lesson with the given id.
func (s *Storage) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage.postgresql.GetVideo"
	row := s.DB.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err := scanVideo(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return v, nil
}

// ListVideos returns the curriculum of a course ordered by position.
func (s *Storage) ListVideos(ctx context.Context, courseID string, limit int) ([]models.Video, error) {
	const op = "storage.postgresql.ListVideos"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE course_id = $1
		ORDER BY sort_order, created_at
		LIMIT $2`, courseID, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateVideo overwrites every mutable field of the lesson.
func (s *Storage) UpdateVideo(ctx context.Context, v models.Video) error {
	const op = "storage.postgresql.UpdateVideo"
	res, err := s.DB.ExecContext(ctx, `
		UPDATE videos
		SET course_id = $2, title = $3, description = $4, video_url = $5,
		    duration_minutes = $6, sort_order = $7, is_preview = $8, type = $9
		WHERE id = $1`,
		v.ID, v.CourseID, v.Title, v.Description, v.VideoURL, v.DurationMinutes, v.Order, v.IsPreview, v.Type)
	return affected(op, res, err)
}

// DeleteVideo removes one lesson.
func (s *Storage) DeleteVideo(ctx context.Context, id string) error {
	const op = "storage.postgresql.DeleteVideo"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	return affected(op, res, err)
}

// DeleteVideosByCourse removes the whole curriculum of a course and reports
// how many lessons were removed.
func (s *Storage) DeleteVideosByCourse(ctx context.Context, courseID string) (int64, error) {
	const op = "storage.postgresql.DeleteVideosByCourse"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM videos WHERE course_id = $1`, courseID)
	if err != nil {
		return 0, wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func scanVideo(row scanner) (*models.Video, error) {
	var v models.Video
	err := row.Scan(&v.ID, &v.CourseID, &v.Title, &v.Description, &v.VideoURL, &v.DurationMinutes,
		&v.Order, &v.IsPreview, &v.Type, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
