package send

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mavecode/mavecode-api/internal/services/chat"
)

func TestSendHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, chat.NewChatService(chat.MaintenanceStub{}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message":"halo","session_id":"s-1"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"session_id":"s-1"`)
	assert.Contains(t, rr.Body.String(), "WhatsApp")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
