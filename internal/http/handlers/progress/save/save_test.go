package save

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/http/middlewarectx"
	"github.com/mavecode/mavecode-api/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Save(ctx context.Context, userID string, req models.ProgressRequest) (*models.Progress, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func TestSaveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caller := models.UserIdentity{User: &models.User{ID: "u1"}}

	tests := []struct {
		name         string
		body         string
		setupMock    func(*ServiceMock)
		wantStatus   int
		wantContains string
	}{
		{
			name: "ok",
			body: `{"course_id":"c1","video_id":"v1","completed":true,"progress_percent":100}`,
			setupMock: func(m *ServiceMock) {
				m.On("Save", mock.Anything, "u1", models.ProgressRequest{
					CourseID: "c1", VideoID: "v1", Completed: true, ProgressPercent: 100,
				}).Return(&models.Progress{ID: "p1"}, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `{"message":"Progress updated"}`,
		},
		{
			name:         "percent out of range",
			body:         `{"course_id":"c1","video_id":"v1","progress_percent":101}`,
			setupMock:    func(*ServiceMock) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantContains: `"field":"progress_percent"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/progress", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), caller))
			rr := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantContains)
			svc.AssertExpectations(t)
		})
	}
}
