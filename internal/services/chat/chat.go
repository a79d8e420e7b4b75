// Package chat answers the site assistant. The assistant is not connected to
// a model; MaintenanceStub answers every message with a fixed notice.
package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mavecode/mavecode-api/internal/models"
)

// MaintenanceReply is the notice returned while the assistant is offline.
const MaintenanceReply = "Maaf, fitur AI sedang dalam pemeliharaan. Silakan hubungi kami via WhatsApp: +62 851 9176 9521"

// Provider produces a reply for a message in a session.
type Provider interface {
	Reply(ctx context.Context, sessionID, message string) (string, error)
}

// MaintenanceStub is the offline Provider.
type MaintenanceStub struct{}

func (MaintenanceStub) Reply(context.Context, string, string) (string, error) {
	return MaintenanceReply, nil
}

// ChatService implements POST /chat.
type ChatService struct {
	provider Provider
}

// NewChatService creates a ChatService.
func NewChatService(provider Provider) *ChatService {
	return &ChatService{provider: provider}
}

// Send forwards the message to the provider, opening a session when the
// request carries none.
func (s *ChatService) Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	const op = "services.chat.Send"

	sessionID := uuid.NewString()
	if req.SessionID != nil && *req.SessionID != "" {
		sessionID = *req.SessionID
	}
	reply, err := s.provider.Reply(ctx, sessionID, req.Message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.ChatResponse{Response: reply, SessionID: sessionID}, nil
}
