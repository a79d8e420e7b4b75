package update

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/article"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Update(ctx context.Context, idOrSlug string, req models.ArticleRequest) (*models.Article, error) {
	args := m.Called(ctx, idOrSlug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	valid := `{"title":"Belajar Go","content":"isi","category":"programming"}`

	tests := []struct {
		name       string
		key        string
		body       string
		mockSetup  func(*ServiceMock)
		wantStatus int
	}{
		{
			name: "updated by slug",
			key:  "belajar-go",
			body: valid,
			mockSetup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, "belajar-go", mock.Anything).
					Return(&models.Article{ID: "a1", Slug: "belajar-go"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			key:  "ghost",
			body: valid,
			mockSetup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, "ghost", mock.Anything).
					Return(nil, article.ErrArticleNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing content",
			key:        "a1",
			body:       `{"title":"x","category":"programming"}`,
			mockSetup:  func(*ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store failure",
			key:  "a1",
			body: valid,
			mockSetup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, "a1", mock.Anything).
					Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.mockSetup(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodPut, "/api/articles/"+tt.key, bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.key)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}
