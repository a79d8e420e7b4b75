package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mavecode/mavecode-api/internal/models"
)

// CreateUser stores a new user. A taken email yields storage.ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.mongodb.CreateUser"
	if _, err := s.col(colUsers).InsertOne(ctx, user); err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetUserByEmail returns the user registered with email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.mongodb.GetUserByEmail"
	return decodeOne(op, s.col(colUsers).FindOne(ctx, bson.M{"email": email}), validUser)
}

// GetUser returns the user with the given id.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.mongodb.GetUser"
	return decodeOne(op, s.col(colUsers).FindOne(ctx, byID(id)), validUser)
}

// SetUserPremium marks the user as premium.
func (s *Storage) SetUserPremium(ctx context.Context, id string) error {
	const op = "storage.mongodb.SetUserPremium"
	res, err := s.col(colUsers).UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"is_premium": true}})
	return matched(op, res, err)
}
