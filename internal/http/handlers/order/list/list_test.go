package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/storage"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) List(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func TestListHandler(t *testing.T) {
	caller := models.UserIdentity{User: &models.User{ID: "u1"}}

	tests := []struct {
		name         string
		caller       models.Identity
		setupMock    func(*ServiceMock)
		wantStatus   int
		wantContains string
	}{
		{
			name:   "caller's orders",
			caller: caller,
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, "u1").Return([]models.Order{
					{ID: "o1", UserID: "u1", CourseID: "c1", Status: models.OrderStatusPending},
				}, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"id":"o1"`,
		},
		{
			name:   "no orders",
			caller: caller,
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, "u1").Return([]models.Order{}, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `[]`,
		},
		{
			name:         "no caller",
			setupMock:    func(*ServiceMock) {},
			wantStatus:   http.StatusUnauthorized,
			wantContains: middlewarectx.DetailNotAuthenticated,
		},
		{
			name:   "store unavailable",
			caller: caller,
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, "u1").Return(nil, errors.Join(errors.New("list"), storage.ErrUnavailable)).Once()
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantContains: "Service in maintenance mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.caller != nil {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), tt.caller))
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantContains)
			svc.AssertExpectations(t)
		})
	}
}
