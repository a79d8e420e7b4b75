// Package mongodb implements the storage backend on MongoDB. Documents use
// string ids in _id and the field names of the bson tags on the models.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/storage"
)

const (
	colUsers       = "users"
	colCourses     = "courses"
	colVideos      = "videos"
	colArticles    = "articles"
	colFAQs        = "faqs"
	colLiveClasses = "live_classes"
	colOrders      = "orders"
	colProgress    = "progress"
	colSettings    = "settings"
	colContact     = "contact_messages"
)

// Storage is the MongoDB backend.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to uri, checks the connection and makes sure the indexes the
// backend relies on exist.
func New(ctx context.Context, uri, dbName string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{client: client, db: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colArticles: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colVideos: {
			{Keys: bson.D{{Key: "course_id", Value: 1}}},
		},
		colOrders: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		colProgress: {
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "course_id", Value: 1},
					{Key: "video_id", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
	}
	for name, idx := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Ping checks that the primary is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// wrap maps driver errors onto the storage sentinels.
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func limitOf(limit int) int64 {
	if limit <= 0 || limit > storage.MaxListSize {
		return storage.MaxListSize
	}
	return int64(limit)
}

// decodeOne decodes a single result and rejects documents that fail check.
func decodeOne[T any](op string, res *mongo.SingleResult, check func(*T) bool) (*T, error) {
	var doc T
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, wrap(op, err)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrCorrupt, err)
	}
	if !check(&doc) {
		return nil, fmt.Errorf("%s: %w: %T", op, storage.ErrCorrupt, doc)
	}
	return &doc, nil
}

// findAll runs a query and decodes every document, failing on the first
// malformed one.
func findAll[T any](
	ctx context.Context,
	op string,
	col *mongo.Collection,
	filter any,
	opts *options.FindOptions,
	check func(*T) bool,
) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer cur.Close(ctx)

	result := []T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrCorrupt, err)
		}
		if !check(&doc) {
			return nil, fmt.Errorf("%s: %w: %T %v", op, storage.ErrCorrupt, doc, cur.Current.Lookup("_id"))
		}
		result = append(result, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// matched turns an update that matched nothing into ErrNotFound.
func matched(op string, res *mongo.UpdateResult, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

func deleted(op string, res *mongo.DeleteResult, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
