// Package site serves landing page content: the hero banner, public counters
// and the static category and plan lists.
package site

import (
	"context"
	"errors"
	"fmt"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

// Offsets added to the real counts on the landing page.
const (
	courseOffset  = 50
	studentOffset = 1000
	articleOffset = 10
	mentorCount   = 5
)

const defaultHeroImage = "https://images.unsplash.com/photo-1649451844813-3130d6f42f8a?crop=entropy&cs=srgb&fm=jpg&q=85"

// DefaultHero is shown until an admin saves a banner.
func DefaultHero() models.HeroContent {
	img := defaultHeroImage
	return models.HeroContent{
		Title:           "Mulai Karir Codingmu Sekarang",
		Subtitle:        "Belajar coding dari nol hingga mahir bersama mentor berpengalaman. Dapatkan skill yang dibutuhkan industri teknologi.",
		CTAText:         "Mulai Belajar Coding",
		BackgroundImage: &img,
	}
}

// Repository is the settings part of the store.
type Repository interface {
	GetHero(ctx context.Context) (*models.HeroContent, error)
	SaveHero(ctx context.Context, hero models.HeroContent) error
	Counts(ctx context.Context) (models.Counts, error)
}

// SiteService implements the site content endpoints.
type SiteService struct {
	repo Repository
}

// NewSiteService creates a SiteService.
func NewSiteService(repo Repository) *SiteService {
	return &SiteService{repo: repo}
}

// Hero returns the stored banner or the defaults.
func (s *SiteService) Hero(ctx context.Context) (*models.HeroContent, error) {
	const op = "services.site.Hero"
	hero, err := s.repo.GetHero(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		def := DefaultHero()
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return hero, nil
}

// UpdateHero replaces the banner.
func (s *SiteService) UpdateHero(ctx context.Context, hero models.HeroContent) error {
	const op = "services.site.UpdateHero"
	if err := s.repo.SaveHero(ctx, hero); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stats returns the landing page counters.
func (s *SiteService) Stats(ctx context.Context) (*models.Stats, error) {
	const op = "services.site.Stats"
	c, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Stats{
		Courses:  c.Courses + courseOffset,
		Students: c.Users + studentOffset,
		Articles: c.Articles + articleOffset,
		Mentors:  mentorCount,
	}, nil
}

// Categories lists the fixed course categories.
func Categories() []models.Category {
	return []models.Category{
		{ID: "web", Name: "Web Development", Icon: "Globe"},
		{ID: "mobile", Name: "Mobile Development", Icon: "Smartphone"},
		{ID: "backend", Name: "Backend", Icon: "Server"},
		{ID: "frontend", Name: "Frontend", Icon: "Layout"},
		{ID: "data", Name: "Data Science", Icon: "BarChart"},
		{ID: "devops", Name: "DevOps", Icon: "Cloud"},
	}
}

// Plans lists the subscription tiers.
func Plans() []models.SubscriptionPlan {
	return []models.SubscriptionPlan{
		{
			ID:           "basic",
			Name:         "Basic",
			PriceMonthly: 99000,
			PriceYearly:  999000,
			Features:     []string{"Akses semua kursus gratis", "Sertifikat digital", "Forum komunitas", "Dukungan email"},
		},
		{
			ID:           "pro",
			Name:         "Pro",
			PriceMonthly: 199000,
			PriceYearly:  1999000,
			Features:     []string{"Semua fitur Basic", "Akses kursus premium", "Live class mingguan", "Mentoring 1-on-1", "Project review"},
			IsPopular:    true,
		},
		{
			ID:           "enterprise",
			Name:         "Enterprise",
			PriceMonthly: 499000,
			PriceYearly:  4999000,
			Features:     []string{"Semua fitur Pro", "Tim unlimited", "Custom learning path", "Priority support 24/7", "API access", "White-label option"},
		},
	}
}
