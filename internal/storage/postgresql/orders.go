package postgresql

import (
	"context"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
)

const orderColumns = `id, user_id, course_id, amount, status, payment_method, va_number, created_at`

// CreateOrder stores a new order.
func (s *Storage) CreateOrder(ctx context.Context, o models.Order) error {
	const op = "storage.postgresql.CreateOrder"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.UserID, o.CourseID, o.Amount, o.Status, o.PaymentMethod, o.VANumber, o.CreatedAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetOrder returns the order with the given id.
func (s *Storage) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	const op = "storage.postgresql.GetOrder"
	row := s.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return o, nil
}

// ListOrders returns the orders of one user, newest first.
func (s *Storage) ListOrders(ctx context.Context, userID string, limit int) ([]models.Order, error) {
	const op = "storage.postgresql.ListOrders"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limitOf(limit))
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MarkOrderPaid sets the status of an order owned by userID to paid. Orders of
// other users are reported as not found.
func (s *Storage) MarkOrderPaid(ctx context.Context, id, userID string) (*models.Order, error) {
	const op = "storage.postgresql.MarkOrderPaid"
	row := s.DB.QueryRowContext(ctx, `
		UPDATE orders SET status = $3
		WHERE id = $1 AND user_id = $2
		RETURNING `+orderColumns, id, userID, models.OrderStatusPaid)
	o, err := scanOrder(row)
	if err != nil {
		return nil, wrap(op, err)
	}
	return o, nil
}

func scanOrder(row scanner) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.UserID, &o.CourseID, &o.Amount, &o.Status, &o.PaymentMethod, &o.VANumber, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
