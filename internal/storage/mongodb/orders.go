package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateOrder stores a new order.
func (s *Storage) CreateOrder(ctx context.Context, o models.Order) error {
	const op = "storage.mongodb.CreateOrder"
	if _, err := s.col(colOrders).InsertOne(ctx, o); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetOrder returns the order with the given id.
func (s *Storage) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	const op = "storage.mongodb.GetOrder"
	return decodeOne(op, s.col(colOrders).FindOne(ctx, byID(id)), validOrder)
}

// ListOrders returns the orders of one user, newest first.
func (s *Storage) ListOrders(ctx context.Context, userID string, limit int) ([]models.Order, error) {
	const op = "storage.mongodb.ListOrders"
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limitOf(limit))
	return findAll(ctx, op, s.col(colOrders), bson.M{"user_id": userID}, opts, validOrder)
}

// MarkOrderPaid sets the status of an order owned by userID to paid. Orders of
// other users are reported as not found.
func (s *Storage) MarkOrderPaid(ctx context.Context, id, userID string) (*models.Order, error) {
	const op = "storage.mongodb.MarkOrderPaid"
	res := s.col(colOrders).FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"status": models.OrderStatusPaid}},
		afterUpdate(),
	)
	return decodeOne(op, res, validOrder)
}
