package join

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

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/liveclass"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Join(ctx context.Context, id string) (*models.LiveClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LiveClass), args.Error(1)
}

func request(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/live-classes/"+id+"/join", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middlewarectx.WithIdentity(ctx, models.UserIdentity{User: &models.User{ID: "u1"}})
	return req.WithContext(ctx)
}

func TestJoinHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	url := "https://meet.example.com/go"

	svc := new(ServiceMock)
	svc.On("Join", mock.Anything, "l1").Return(&models.LiveClass{ID: "l1", MeetingURL: &url, ParticipantsCount: 1}, nil).Once()
	svc.On("Join", mock.Anything, "nope").Return(nil, liveclass.ErrLiveClassNotFound).Once()
	h := New(logger, svc)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, request("l1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Joined successfully","meeting_url":"https://meet.example.com/go"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Live class not found"}`, rr.Body.String())

	svc.AssertExpectations(t)
}
