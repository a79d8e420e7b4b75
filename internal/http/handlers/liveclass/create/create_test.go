package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, req models.LiveClassRequest) (*models.LiveClass, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LiveClass), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		body         string
		setupMock    func(*ServiceMock)
		wantStatus   int
		wantContains string
	}{
		{
			name: "ok",
			body: `{"title":"Live Go","scheduled_at":"2026-11-01T19:00"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Create", mock.Anything, models.LiveClassRequest{Title: "Live Go", ScheduledAt: "2026-11-01T19:00"}).
					Return(&models.LiveClass{
						ID: "l1", Title: "Live Go", ScheduledAt: time.Date(2026, 11, 1, 19, 0, 0, 0, time.UTC),
						DurationMinutes: 60, MaxParticipants: 100,
					}, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"scheduled_at":"2026-11-01T19:00:00Z"`,
		},
		{
			name: "unparseable time",
			body: `{"title":"Live Go","scheduled_at":"next friday"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, models.ErrInvalidTimestamp).Once()
			},
			wantStatus:   http.StatusUnprocessableEntity,
			wantContains: `"field":"scheduled_at"`,
		},
		{
			name:         "missing time",
			body:         `{"title":"Live Go"}`,
			setupMock:    func(*ServiceMock) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantContains: `"field":"scheduled_at"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/live-classes", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantContains)
			svc.AssertExpectations(t)
		})
	}
}
