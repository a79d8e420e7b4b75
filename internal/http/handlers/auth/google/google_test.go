package google

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

	"github.com/mavecode/mavecode-api/internal/models"
	"github.com/mavecode/mavecode-api/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) GoogleLogin(ctx context.Context, token string) (*models.TokenResponse, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenResponse), args.Error(1)
}

func TestGoogleHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     *models.TokenResponse
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "ok", body: `{"token":"g"}`, result: &models.TokenResponse{Token: "tok"}, wantStatus: http.StatusOK},
		{name: "undecodable", body: `{"token":"g"}`, err: auth.ErrInvalidGoogleToken, wantStatus: http.StatusBadRequest, wantDetail: "Invalid Google token"},
		{name: "no email", body: `{"token":"g"}`, err: auth.ErrGoogleEmailMissing, wantStatus: http.StatusBadRequest, wantDetail: "Email not found in token"},
		{name: "missing token", body: `{}`, wantStatus: http.StatusUnprocessableEntity, wantDetail: "field token is a required field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.result != nil || tt.err != nil {
				svc.On("GoogleLogin", mock.Anything, "g").Return(tt.result, tt.err).Once()
			}

			rec := httptest.NewRecorder()
			New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/google", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantDetail)
			svc.AssertExpectations(t)
		})
	}
}
