// Package order runs the simulated purchase flow: an order is created against
// a course at its current price and later marked paid by its owner.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrOrderNotFound  = errors.New("order not found")
)

// Repository is the part of the store touched by orders.
type Repository interface {
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	SetUserPremium(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, o models.Order) error
	ListOrders(ctx context.Context, userID string, limit int) ([]models.Order, error)
	MarkOrderPaid(ctx context.Context, id, userID string) (*models.Order, error)
}

// Gateway issues payment instructions for an order.
type Gateway interface {
	Charge(ctx context.Context, order models.Order) (*string, error)
}

// EventPublisher delivers domain events.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg any) error
}

// OrderService implements the order endpoints.
type OrderService struct {
	repo    Repository
	gateway Gateway
	events  EventPublisher
	log     *slog.Logger
	now     func() time.Time
}

// NewOrderService creates an OrderService.
func NewOrderService(repo Repository, gateway Gateway, events EventPublisher, log *slog.Logger) *OrderService {
	return &OrderService{repo: repo, gateway: gateway, events: events, log: log, now: time.Now}
}

// Create opens a pending order for the course on behalf of userID.
func (s *OrderService) Create(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error) {
	const op = "services.order.Create"

	course, err := s.repo.GetCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o := models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		CourseID:      course.ID,
		Amount:        course.Price,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     s.now().UTC().Truncate(time.Millisecond),
	}
	va, err := s.gateway.Charge(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("%s: charge: %w", op, err)
	}
	o.VANumber = va

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

// List returns the orders of userID, newest first.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "services.order.List"
	orders, err := s.repo.ListOrders(ctx, userID, storage.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// Pay marks the caller's order paid and grants the caller premium. Any paid
// order grants premium regardless of course. The two writes are not atomic:
// when granting premium fails the order stays paid and the error is returned.
func (s *OrderService) Pay(ctx context.Context, id, userID string) (*models.Order, error) {
	const op = "services.order.Pay"
	log := s.log.With(slog.String("op", op), slog.String("order_id", id))

	o, err := s.repo.MarkOrderPaid(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if userID == models.AdminID {
		return o, nil
	}
	if err := s.repo.SetUserPremium(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return o, nil
		}
		log.Error("order paid but premium not granted", sl.Err(err))
		return nil, fmt.Errorf("%s: grant premium: %w", op, err)
	}

	s.publishPaid(ctx, log, *o)
	return o, nil
}

func (s *OrderService) publishPaid(ctx context.Context, log *slog.Logger, o models.Order) {
	event := models.OrderPaidEvent{
		OrderID:  o.ID,
		UserID:   o.UserID,
		CourseID: o.CourseID,
		Amount:   o.Amount,
	}
	if u, err := s.repo.GetUser(ctx, o.UserID); err == nil {
		event.Email = u.Email
		event.Name = u.Name
	}
	if c, err := s.repo.GetCourse(ctx, o.CourseID); err == nil {
		event.CourseTitle = c.Title
	}
	if event.Email == "" {
		log.Warn("paid order has no recipient, notification skipped")
		return
	}
	if err := s.events.Publish(ctx, models.EventOrderPaid, event); err != nil {
		log.Warn("failed to publish order event", sl.Err(err))
	}
}
