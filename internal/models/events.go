package models

// Routing keys of the domain events published to the notifications exchange.
const (
	EventContactReceived = "contact.received"
	EventOrderPaid       = "order.paid"
	EventUserRegistered  = "user.registered"
)

// ContactReceivedEvent is published after a contact message is stored.
type ContactReceivedEvent struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// OrderPaidEvent is published after an order is marked paid.
type OrderPaidEvent struct {
	OrderID     string  `json:"order_id"`
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	CourseID    string  `json:"course_id"`
	CourseTitle string  `json:"course_title"`
	Amount      float64 `json:"amount"`
}

// UserRegisteredEvent is published when an account is created.
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
