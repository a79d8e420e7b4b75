// Package seed replaces the catalogue with the demo content embedded in
// seed.yaml.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mavecode/mavecode-api/internal/models"
)

//go:embed seed.yaml
var demo []byte

// Repository is the part of the store the seeder writes to.
type Repository interface {
	ResetContent(ctx context.Context) error
	CreateCourse(ctx context.Context, c models.Course) error
	CreateVideo(ctx context.Context, v models.Video) error
	CreateArticle(ctx context.Context, a models.Article) error
	CreateFAQ(ctx context.Context, f models.FAQ) error
	CreateLiveClass(ctx context.Context, l models.LiveClass) error
}

type dataset struct {
	Courses     []courseEntry    `yaml:"courses"`
	Articles    []articleEntry   `yaml:"articles"`
	FAQs        []models.FAQ     `yaml:"faqs"`
	LiveClasses []liveClassEntry `yaml:"live_classes"`
}

type courseEntry struct {
	Title         string       `yaml:"title"`
	Description   string       `yaml:"description"`
	Thumbnail     string       `yaml:"thumbnail"`
	Price         float64      `yaml:"price"`
	IsFree        bool         `yaml:"is_free"`
	Category      string       `yaml:"category"`
	Level         string       `yaml:"level"`
	DurationHours int          `yaml:"duration_hours"`
	Videos        []videoEntry `yaml:"videos"`
}

type videoEntry struct {
	Title           string `yaml:"title"`
	VideoURL        string `yaml:"video_url"`
	DurationMinutes int    `yaml:"duration_minutes"`
	IsPreview       bool   `yaml:"is_preview"`
	Order           int    `yaml:"order"`
	Type            string `yaml:"type"`
}

type articleEntry struct {
	Slug      string   `yaml:"slug"`
	Title     string   `yaml:"title"`
	Content   string   `yaml:"content"`
	Excerpt   string   `yaml:"excerpt"`
	Thumbnail string   `yaml:"thumbnail"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	Views     int      `yaml:"views"`
}

type liveClassEntry struct {
	Title             string        `yaml:"title"`
	Description       string        `yaml:"description"`
	StartsIn          time.Duration `yaml:"starts_in"`
	DurationMinutes   int           `yaml:"duration_minutes"`
	MeetingURL        string        `yaml:"meeting_url"`
	MaxParticipants   int           `yaml:"max_participants"`
	ParticipantsCount int           `yaml:"participants_count"`
}

// Seeder loads the demo content.
type Seeder struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// New creates a Seeder.
func New(repo Repository, log *slog.Logger) *Seeder {
	return &Seeder{repo: repo, log: log, now: time.Now}
}

// Seed wipes courses, videos, articles, FAQs and live classes and inserts the
// demo set with fresh ids. Users, orders and settings are untouched.
func (s *Seeder) Seed(ctx context.Context) error {
	const op = "seed.Seed"

	var data dataset
	if err := yaml.Unmarshal(demo, &data); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	if err := s.repo.ResetContent(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	var videos int
	for _, e := range data.Courses {
		c := models.Course{
			ID:            uuid.NewString(),
			Title:         e.Title,
			Description:   e.Description,
			Thumbnail:     optional(e.Thumbnail),
			Price:         e.Price,
			IsFree:        e.IsFree,
			Category:      e.Category,
			Level:         e.Level,
			DurationHours: e.DurationHours,
			Instructor:    models.DefaultInstructor,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.CreateCourse(ctx, c); err != nil {
			return fmt.Errorf("%s: course %q: %w", op, e.Title, err)
		}
		for _, v := range e.Videos {
			kind := v.Type
			if kind == "" {
				kind = models.VideoTypeVideo
			}
			err := s.repo.CreateVideo(ctx, models.Video{
				ID:              uuid.NewString(),
				CourseID:        c.ID,
				Title:           v.Title,
				VideoURL:        v.VideoURL,
				DurationMinutes: v.DurationMinutes,
				Order:           v.Order,
				IsPreview:       v.IsPreview,
				Type:            kind,
				CreatedAt:       now,
			})
			if err != nil {
				return fmt.Errorf("%s: video %q: %w", op, v.Title, err)
			}
			videos++
		}
	}

	for _, e := range data.Articles {
		err := s.repo.CreateArticle(ctx, models.Article{
			ID:        uuid.NewString(),
			Slug:      e.Slug,
			Title:     e.Title,
			Content:   e.Content,
			Excerpt:   optional(e.Excerpt),
			Thumbnail: optional(e.Thumbnail),
			Category:  e.Category,
			Tags:      e.Tags,
			Author:    models.DefaultInstructor,
			Views:     e.Views,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("%s: article %q: %w", op, e.Slug, err)
		}
	}

	for _, f := range data.FAQs {
		f.ID = uuid.NewString()
		if err := s.repo.CreateFAQ(ctx, f); err != nil {
			return fmt.Errorf("%s: faq %d: %w", op, f.Order, err)
		}
	}

	for _, e := range data.LiveClasses {
		err := s.repo.CreateLiveClass(ctx, models.LiveClass{
			ID:                uuid.NewString(),
			Title:             e.Title,
			Description:       optional(e.Description),
			Instructor:        models.DefaultInstructor,
			ScheduledAt:       now.Add(e.StartsIn),
			DurationMinutes:   e.DurationMinutes,
			MeetingURL:        optional(e.MeetingURL),
			MaxParticipants:   e.MaxParticipants,
			ParticipantsCount: e.ParticipantsCount,
			CreatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("%s: live class %q: %w", op, e.Title, err)
		}
	}

	s.log.Info("demo content seeded",
		slog.Int("courses", len(data.Courses)),
		slog.Int("videos", videos),
		slog.Int("articles", len(data.Articles)),
		slog.Int("faqs", len(data.FAQs)),
		slog.Int("live_classes", len(data.LiveClasses)),
	)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
