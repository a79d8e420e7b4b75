package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mavecode/mavecode-api/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Send(ctx context.Context, req models.ContactRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	body := `{"name":"Sari","email":"sari@example.com","subject":"Kelas","message":"Halo"}`
	want := models.ContactRequest{Name: "Sari", Email: "sari@example.com", Subject: "Kelas", Message: "Halo"}

	tests := []struct {
		name         string
		body         string
		setupMock    func(*ServiceMock)
		wantStatus   int
		wantContains string
	}{
		{
			name:         "ok",
			body:         body,
			setupMock:    func(m *ServiceMock) { m.On("Send", mock.Anything, want).Return("m1", nil).Once() },
			wantStatus:   http.StatusOK,
			wantContains: `{"message":"Message sent successfully","id":"m1"}`,
		},
		{
			name:         "bad email",
			body:         `{"name":"Sari","email":"sari","subject":"Kelas","message":"Halo"}`,
			setupMock:    func(*ServiceMock) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantContains: `"field":"email"`,
		},
		{
			name:         "store error",
			body:         body,
			setupMock:    func(m *ServiceMock) { m.On("Send", mock.Anything, want).Return("", errors.New("boom")).Once() },
			wantStatus:   http.StatusInternalServerError,
			wantContains: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantContains)
			svc.AssertExpectations(t)
		})
	}
}
