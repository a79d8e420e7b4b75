package article

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateArticle(ctx context.Context, a models.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *RepoMock) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *RepoMock) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *RepoMock) IncrementArticleViews(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *RepoMock) ListArticles(ctx context.Context, filter models.ArticleFilter, limit int) ([]models.Article, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *RepoMock) UpdateArticle(ctx context.Context, a models.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *RepoMock) DeleteArticle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// viewCounter increments atomically the way both backends do.
type viewCounter struct {
	RepoMock
	mu    sync.Mutex
	views int
}

func (v *viewCounter) IncrementArticleViews(_ context.Context, slug string) (*models.Article, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.views++
	return &models.Article{Slug: slug, Views: v.views}, nil
}

func TestArticleService_ViewIncrementsByOne(t *testing.T) {
	repo := &viewCounter{views: 7}
	svc := NewArticleService(repo)

	first, err := svc.View(context.Background(), "tips-go")
	require.NoError(t, err)
	second, err := svc.View(context.Background(), "tips-go")
	require.NoError(t, err)

	assert.Equal(t, 8, first.Views)
	assert.Equal(t, 9, second.Views)
}

func TestArticleService_ViewConcurrent(t *testing.T) {
	repo := &viewCounter{}
	svc := NewArticleService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.View(context.Background(), "tips-go")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, repo.views)
}

func TestArticleService_ViewUnknown(t *testing.T) {
	repo := new(RepoMock)
	repo.On("IncrementArticleViews", mock.Anything, "nope").Return(nil, storage.ErrNotFound).Once()

	_, err := NewArticleService(repo).View(context.Background(), "nope")
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_Create(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateArticle", mock.Anything, mock.Anything).Return(nil).Once()

	got, err := NewArticleService(repo).Create(context.Background(), models.ArticleRequest{
		Title: "Belajar Go: Dasar!", Content: "isi", Category: "backend",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.Slug, "belajar-go-dasar-"))
	assert.True(t, strings.HasSuffix(got.Slug, got.ID[:8]))
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, models.DefaultInstructor, got.Author)
	assert.Zero(t, got.Views)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestArticleService_UpdateBySlug(t *testing.T) {
	repo := new(RepoMock)
	existing := &models.Article{ID: "a1", Slug: "tips-go-a1", Title: "Old", Views: 4}
	repo.On("GetArticle", mock.Anything, "tips-go-a1").Return(nil, storage.ErrNotFound).Once()
	repo.On("GetArticleBySlug", mock.Anything, "tips-go-a1").Return(existing, nil).Once()
	repo.On("UpdateArticle", mock.Anything, mock.MatchedBy(func(a models.Article) bool {
		return a.ID == "a1" && a.Slug == "tips-go-a1" && a.Title == "New" && a.Views == 4
	})).Return(nil).Once()

	got, err := NewArticleService(repo).Update(context.Background(), "tips-go-a1", models.ArticleRequest{
		Title: "New", Content: "c", Category: "backend",
	})
	require.NoError(t, err)
	assert.Equal(t, "tips-go-a1", got.Slug)
	repo.AssertExpectations(t)
}

func TestArticleService_Delete(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetArticle", mock.Anything, "a1").Return(&models.Article{ID: "a1"}, nil).Once()
		repo.On("DeleteArticle", mock.Anything, "a1").Return(nil).Once()

		require.NoError(t, NewArticleService(repo).Delete(context.Background(), "a1"))
		repo.AssertExpectations(t)
	})

	t.Run("unknown", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetArticle", mock.Anything, "x").Return(nil, storage.ErrNotFound).Once()
		repo.On("GetArticleBySlug", mock.Anything, "x").Return(nil, storage.ErrNotFound).Once()

		err := NewArticleService(repo).Delete(context.Background(), "x")
		require.ErrorIs(t, err, ErrArticleNotFound)
	})
}
