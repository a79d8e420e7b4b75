package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mavecode/mavecode-api/internal/models"
)

const heroKey = "hero"

type heroDocument struct {
	ID                 string `bson:"_id"`
	models.HeroContent `bson:",inline"`
}

// GetHero returns the stored hero content or storage.ErrNotFound.
func (s *Storage) GetHero(ctx context.Context) (*models.HeroContent, error) {
	const op = "storage.mongodb.GetHero"
	doc, err := decodeOne(op, s.col(colSettings).FindOne(ctx, byID(heroKey)), validHero)
	if err != nil {
		return nil, err
	}
	return &doc.HeroContent, nil
}

// SaveHero replaces the hero content.
func (s *Storage) SaveHero(ctx context.Context, hero models.HeroContent) error {
	const op = "storage.mongodb.SaveHero"
	_, err := s.col(colSettings).ReplaceOne(ctx,
		byID(heroKey),
		heroDocument{ID: heroKey, HeroContent: hero},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// Counts returns the document counts used for the landing page stats.
func (s *Storage) Counts(ctx context.Context) (models.Counts, error) {
	const op = "storage.mongodb.Counts"
	var (
		c   models.Counts
		err error
	)
	if c.Courses, err = s.col(colCourses).CountDocuments(ctx, bson.D{}); err != nil {
		return models.Counts{}, wrap(op, err)
	}
	if c.Users, err = s.col(colUsers).CountDocuments(ctx, bson.D{}); err != nil {
		return models.Counts{}, wrap(op, err)
	}
	if c.Articles, err = s.col(colArticles).CountDocuments(ctx, bson.D{}); err != nil {
		return models.Counts{}, wrap(op, err)
	}
	return c, nil
}

// ResetContent removes all catalogue content. Users, orders and settings are
// kept.
func (s *Storage) ResetContent(ctx context.Context) error {
	const op = "storage.mongodb.ResetContent"
	for _, name := range []string{colVideos, colCourses, colArticles, colFAQs, colLiveClasses} {
		if _, err := s.col(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}
	}
	return nil
}
