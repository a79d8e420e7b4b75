package run

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
)

type SeederMock struct {
	mock.Mock
}

func (m *SeederMock) Seed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRunHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seeder := new(SeederMock)
	seeder.On("Seed", mock.Anything).Return(nil).Once()
	seeder.On("Seed", mock.Anything).Return(errors.New("drop failed")).Once()
	h := New(logger, seeder)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/seed", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Seed data created successfully"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/seed", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	seeder.AssertExpectations(t)
}
