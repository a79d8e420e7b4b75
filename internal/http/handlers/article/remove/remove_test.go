package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/services/article"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Delete(ctx context.Context, idOrSlug string) error {
	return m.Called(ctx, idOrSlug).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := new(ServiceMock)
	svc.On("Delete", mock.Anything, "belajar-go").Return(nil).Once()
	svc.On("Delete", mock.Anything, "ghost").Return(article.ErrArticleNotFound).Once()
	h := New(logger, svc)

	for key, want := range map[string]int{"belajar-go": http.StatusOK, "ghost": http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodDelete, "/api/articles/"+key, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", key)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Code, key)
	}
	svc.AssertExpectations(t)
}
