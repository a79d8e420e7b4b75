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

	"github.com/mavecode/mavecode-api/internal/services/course"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func request(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/courses/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := new(ServiceMock)
	svc.On("Delete", mock.Anything, "c1").Return(nil).Once()
	svc.On("Delete", mock.Anything, "nope").Return(course.ErrCourseNotFound).Once()
	h := New(logger, svc)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, request("c1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Course deleted"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Course not found"}`, rr.Body.String())

	svc.AssertExpectations(t)
}
