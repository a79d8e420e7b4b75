package api

import (
	"context"
	"sort"
	"sync"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

// memStore is an in-process Store for route tests.
type memStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	courses  map[string]models.Course
	videos   map[string]models.Video
	articles map[string]models.Article
	faqs     map[string]models.FAQ
	live     map[string]models.LiveClass
	orders   map[string]models.Order
	progress map[string]models.Progress
	contacts map[string]models.ContactMessage
	hero     *models.HeroContent
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]models.User{},
		courses:  map[string]models.Course{},
		videos:   map[string]models.Video{},
		articles: map[string]models.Article{},
		faqs:     map[string]models.FAQ{},
		live:     map[string]models.LiveClass{},
		orders:   map[string]models.Order{},
		progress: map[string]models.Progress{},
		contacts: map[string]models.ContactMessage{},
	}
}

func values[T any](m map[string]T, keep func(T) bool, less func(a, b T) bool, limit int) []T {
	out := []T{}
	for _, v := range m {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func get[T any](m map[string]T, id string) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *memStore) Ping(context.Context) error  { return nil }
func (s *memStore) Close(context.Context) error { return nil }

func (s *memStore) CreateUser(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return storage.ErrConflict
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.users, id)
}

func (s *memStore) SetUserPremium(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.IsPremium = true
	s.users[id] = u
	return nil
}

func (s *memStore) Counts(context.Context) (models.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Counts{
		Courses:  int64(len(s.courses)),
		Users:    int64(len(s.users)),
		Articles: int64(len(s.articles)),
	}, nil
}

func (s *memStore) CreateCourse(_ context.Context, c models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[c.ID] = c
	return nil
}

func (s *memStore) GetCourse(_ context.Context, id string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.courses, id)
}

func (s *memStore) ListCourses(_ context.Context, f models.CourseFilter, limit int) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := func(c models.Course) bool {
		return (f.Category == nil || c.Category == *f.Category) && (f.IsFree == nil || c.IsFree == *f.IsFree)
	}
	return values(s.courses, keep, func(a, b models.Course) bool { return a.CreatedAt.After(b.CreatedAt) }, limit), nil
}

func (s *memStore) UpdateCourse(_ context.Context, c models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.courses[c.ID] = c
	return nil
}

func (s *memStore) DeleteCourse(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *memStore) CreateVideo(_ context.Context, v models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[v.ID] = v
	return nil
}

func (s *memStore) GetVideo(_ context.Context, id string) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.videos, id)
}

func (s *memStore) ListVideos(_ context.Context, courseID string, limit int) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.videos,
		func(v models.Video) bool { return v.CourseID == courseID },
		func(a, b models.Video) bool { return a.Order < b.Order }, limit), nil
}

func (s *memStore) UpdateVideo(_ context.Context, v models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[v.ID]; !ok {
		return storage.ErrNotFound
	}
	s.videos[v.ID] = v
	return nil
}

func (s *memStore) DeleteVideo(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.videos, id)
	return nil
}

func (s *memStore) DeleteVideosByCourse(_ context.Context, courseID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, v := range s.videos {
		if v.CourseID == courseID {
			delete(s.videos, id)
			n++
		}
	}
	return n, nil
}

func (s *memStore) CreateArticle(_ context.Context, a models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.articles {
		if existing.Slug == a.Slug {
			return storage.ErrConflict
		}
	}
	s.articles[a.ID] = a
	return nil
}

func (s *memStore) GetArticle(_ context.Context, id string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.articles, id)
}

func (s *memStore) GetArticleBySlug(_ context.Context, slug string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.articles {
		if a.Slug == slug {
			return &a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) IncrementArticleViews(_ context.Context, slug string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.articles {
		if a.Slug == slug {
			a.Views++
			s.articles[id] = a
			return &a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) ListArticles(_ context.Context, f models.ArticleFilter, limit int) ([]models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := func(a models.Article) bool {
		if f.Category != nil && a.Category != *f.Category {
			return false
		}
		if f.Tag == nil {
			return true
		}
		for _, t := range a.Tags {
			if t == *f.Tag {
				return true
			}
		}
		return false
	}
	return values(s.articles, keep, func(a, b models.Article) bool { return a.CreatedAt.After(b.CreatedAt) }, limit), nil
}

func (s *memStore) UpdateArticle(_ context.Context, a models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[a.ID]; !ok {
		return storage.ErrNotFound
	}
	s.articles[a.ID] = a
	return nil
}

func (s *memStore) DeleteArticle(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

func (s *memStore) CreateFAQ(_ context.Context, f models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faqs[f.ID] = f
	return nil
}

func (s *memStore) ListFAQs(_ context.Context, category *string, limit int) ([]models.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.faqs,
		func(f models.FAQ) bool { return category == nil || f.Category == *category },
		func(a, b models.FAQ) bool { return a.Order < b.Order }, limit), nil
}

func (s *memStore) UpdateFAQ(_ context.Context, f models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.faqs[f.ID]; !ok {
		return storage.ErrNotFound
	}
	s.faqs[f.ID] = f
	return nil
}

func (s *memStore) DeleteFAQ(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.faqs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.faqs, id)
	return nil
}

func (s *memStore) CreateLiveClass(_ context.Context, l models.LiveClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[l.ID] = l
	return nil
}

func (s *memStore) GetLiveClass(_ context.Context, id string) (*models.LiveClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.live, id)
}

func (s *memStore) ListLiveClasses(_ context.Context, limit int) ([]models.LiveClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.live, nil, func(a, b models.LiveClass) bool { return a.ScheduledAt.Before(b.ScheduledAt) }, limit), nil
}

func (s *memStore) UpdateLiveClass(_ context.Context, l models.LiveClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[l.ID]; !ok {
		return storage.ErrNotFound
	}
	s.live[l.ID] = l
	return nil
}

func (s *memStore) DeleteLiveClass(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.live, id)
	return nil
}

func (s *memStore) IncrementParticipants(_ context.Context, id string) (*models.LiveClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.live[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	l.ParticipantsCount++
	s.live[id] = l
	return &l, nil
}

func (s *memStore) CreateOrder(_ context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

func (s *memStore) ListOrders(_ context.Context, userID string, limit int) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.orders,
		func(o models.Order) bool { return o.UserID == userID },
		func(a, b models.Order) bool { return a.CreatedAt.After(b.CreatedAt) }, limit), nil
}

func (s *memStore) MarkOrderPaid(_ context.Context, id, userID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || o.UserID != userID {
		return nil, storage.ErrNotFound
	}
	o.Status = models.OrderStatusPaid
	s.orders[id] = o
	return &o, nil
}

func (s *memStore) UpsertProgress(_ context.Context, p models.Progress) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.progress {
		if existing.UserID == p.UserID && existing.CourseID == p.CourseID && existing.VideoID == p.VideoID {
			p.ID = id
			break
		}
	}
	s.progress[p.ID] = p
	return &p, nil
}

func (s *memStore) ListProgress(_ context.Context, userID, courseID string, limit int) ([]models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.progress,
		func(p models.Progress) bool { return p.UserID == userID && p.CourseID == courseID },
		func(a, b models.Progress) bool { return a.UpdatedAt.After(b.UpdatedAt) }, limit), nil
}

func (s *memStore) GetHero(context.Context) (*models.HeroContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hero == nil {
		return nil, storage.ErrNotFound
	}
	h := *s.hero
	return &h, nil
}

func (s *memStore) SaveHero(_ context.Context, hero models.HeroContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hero = &hero
	return nil
}

func (s *memStore) CreateContactMessage(_ context.Context, m models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[m.ID] = m
	return nil
}

func (s *memStore) ListContactMessages(_ context.Context, limit int) ([]models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return values(s.contacts, nil, func(a, b models.ContactMessage) bool { return a.CreatedAt.After(b.CreatedAt) }, limit), nil
}

func (s *memStore) ResetContent(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = map[string]models.Course{}
	s.videos = map[string]models.Video{}
	s.articles = map[string]models.Article{}
	s.faqs = map[string]models.FAQ{}
	s.live = map[string]models.LiveClass{}
	return nil
}
