package notifier

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mavecode/mavecode-api/internal/lib/smtp"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) From() string {
	return m.Called().String(0)
}

type MockSMTPClient struct {
	mock.Mock
}

func (m *MockSMTPClient) Mail(from string) error { return m.Called(from).Error(0) }
func (m *MockSMTPClient) Rcpt(to string) error   { return m.Called(to).Error(0) }
func (m *MockSMTPClient) Quit() error            { return m.Called().Error(0) }
func (m *MockSMTPClient) Close() error           { return m.Called().Error(0) }

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

// bufferWriter records the DATA payload.
type bufferWriter struct {
	bytes.Buffer
	closed bool
}

func (w *bufferWriter) Close() error {
	w.closed = true
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func expectDelivery(tr *MockTransport, to string) (*MockSMTPClient, *bufferWriter) {
	client := new(MockSMTPClient)
	w := &bufferWriter{}
	tr.On("Connect").Return(client, nil).Once()
	client.On("Mail", "noreply@mavecode.id").Return(nil).Once()
	client.On("Rcpt", to).Return(nil).Once()
	client.On("Data").Return(w, nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()
	return client, w
}

func TestNotifierService_Handlers(t *testing.T) {
	tests := []struct {
		name     string
		handle   func(*NotifierService, []byte) error
		body     string
		to       string
		contains []string
	}{
		{
			name:     "contact goes to admin",
			handle:   (*NotifierService).HandleContact,
			body:     `{"id":"m1","name":"Budi","email":"budi@example.com","subject":"Kelas","message":"Kapan mulai?"}`,
			to:       "admin@mavecode.id",
			contains: []string{"Subject: [Mavecode] Pesan baru: Kelas", "budi@example.com", "Kapan mulai?"},
		},
		{
			name:     "order receipt goes to buyer",
			handle:   (*NotifierService).HandleOrderPaid,
			body:     `{"order_id":"o1","user_id":"u1","email":"a@b.com","name":"A","course_id":"c1","course_title":"Go Dasar","amount":150000}`,
			to:       "a@b.com",
			contains: []string{"Go Dasar", "Rp 150000", "o1"},
		},
		{
			name:     "welcome",
			handle:   (*NotifierService).HandleWelcome,
			body:     `{"user_id":"u1","email":"new@b.com","name":"Nina"}`,
			to:       "new@b.com",
			contains: []string{"Halo Nina", "To: new@b.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(MockTransport)
			tr.On("From").Return("noreply@mavecode.id")
			client, w := expectDelivery(tr, tt.to)

			s := NewNotifierService(tr, "admin@mavecode.id", newNoopLogger())
			require.NoError(t, tt.handle(s, []byte(tt.body)))

			assert.True(t, w.closed)
			for _, want := range tt.contains {
				assert.Contains(t, w.String(), want)
			}
			client.AssertExpectations(t)
			tr.AssertExpectations(t)
		})
	}
}

func TestNotifierService_MalformedIsDropped(t *testing.T) {
	tr := new(MockTransport)
	s := NewNotifierService(tr, "admin@mavecode.id", newNoopLogger())

	require.NoError(t, s.HandleWelcome([]byte("not json")))
	require.NoError(t, s.HandleOrderPaid([]byte(`{"order_id":"o1"}`)), "no recipient")
	tr.AssertNotCalled(t, "Connect")
}

func TestNotifierService_DeliveryFailureIsRetried(t *testing.T) {
	tr := new(MockTransport)
	tr.On("From").Return("noreply@mavecode.id")
	tr.On("Connect").Return(nil, errors.New("connection refused")).Once()

	s := NewNotifierService(tr, "admin@mavecode.id", newNoopLogger())
	err := s.HandleWelcome([]byte(`{"user_id":"u1","email":"new@b.com","name":"Nina"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNotifierService_RcptRejected(t *testing.T) {
	tr := new(MockTransport)
	client := new(MockSMTPClient)
	tr.On("From").Return("noreply@mavecode.id")
	tr.On("Connect").Return(client, nil).Once()
	client.On("Mail", "noreply@mavecode.id").Return(nil).Once()
	client.On("Rcpt", "new@b.com").Return(errors.New("550 mailbox unavailable")).Once()
	client.On("Close").Return(nil).Once()

	s := NewNotifierService(tr, "admin@mavecode.id", newNoopLogger())
	require.Error(t, s.HandleWelcome([]byte(`{"user_id":"u1","email":"new@b.com","name":"Nina"}`)))
	client.AssertNotCalled(t, "Data")
}
