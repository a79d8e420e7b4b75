package models

import "time"

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Order is a course purchase. Amount is the course price at order time.
type Order struct {
	ID            string    `json:"id" bson:"_id"`
	UserID        string    `json:"user_id" bson:"user_id"`
	CourseID      string    `json:"course_id" bson:"course_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	Status        string    `json:"status" bson:"status"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	VANumber      *string   `json:"va_number" bson:"va_number,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CourseID      string `json:"course_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}
