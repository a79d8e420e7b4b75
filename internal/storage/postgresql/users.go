package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

const userColumns = `id, email, password_hash, name, phone, is_premium, created_at`

// CreateUser stores a new user. A taken email yields storage.ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.postgresql.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone, user.IsPremium, user.CreatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetUserByEmail returns the user registered with email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgresql.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgresql.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

// SetUserPremium marks the user as premium.
func (s *Storage) SetUserPremium(ctx context.Context, id string) error {
	const op = "storage.postgresql.SetUserPremium"
	res, err := s.DB.ExecContext(ctx, `UPDATE users SET is_premium = TRUE WHERE id = $1`, id)
	return affected(op, res, err)
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.IsPremium, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
