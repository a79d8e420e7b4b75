package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/mavecode/mavecode-api/internal/models"
)

const courseColumns = `id, title, description, thumbnail, price, is_free, category, level,
	duration_hours, instructor, created_at, updated_at`

// CreateCourse stores a new course.
func (s *Storage) CreateCourse(ctx context.Context, c models.Course) error {
	const op = "storage.postgresql.CreateCourse"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO courses (`+courseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Title, c.Description, c.Thumbnail, c.Price, c.IsFree, c.Category, c.Level,
		c.DurationHours, c.Instructor, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetCourse returns the course with the given id.
func (s *Storage) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	const op = "storage.postgresql.GetCourse"
	row := s.DB.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	c, err := scanCourse(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return c, nil
}

// ListCourses returns courses in insertion order.
func (s *Storage) ListCourses(ctx context.Context, filter models.CourseFilter, limit int) ([]models.Course, error) {
	const op = "storage.postgresql.ListCourses"

	var (
		where []string
		args  []any
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.IsFree != nil {
		args = append(args, *filter.IsFree)
		where = append(where, fmt.Sprintf("is_free = $%d", len(args)))
	}
	query := `SELECT ` + courseColumns + ` FROM courses`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limitOf(limit))
	query += fmt.Sprintf(` ORDER BY seq LIMIT $%d`, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCourse overwrites every mutable field of the course.
func (s *Storage) UpdateCourse(ctx context.Context, c models.Course) error {
	const op = "storage.postgresql.UpdateCourse"
	res, err := s.DB.ExecContext(ctx, `
		UPDATE courses
		SET title = $2, description = $3, thumbnail = $4, price = $5, is_free = $6,
		    category = $7, level = $8, duration_hours = $9, instructor = $10, updated_at = $11
		WHERE id = $1`,
		c.ID, c.Title, c.Description, c.Thumbnail, c.Price, c.IsFree,
		c.Category, c.Level, c.DurationHours, c.Instructor, c.UpdatedAt)
	return affected(op, res, err)
}

// DeleteCourse removes the course. Its videos are left to the caller.
func (s *Storage) DeleteCourse(ctx context.Context, id string) error {
	const op = "storage.postgresql.DeleteCourse"
	res, err := s.DB.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return affected(op, res, err)
}

func scanCourse(row scanner) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Thumbnail, &c.Price, &c.IsFree, &c.Category,
		&c.Level, &c.DurationHours, &c.Instructor, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
