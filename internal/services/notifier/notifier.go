// Package notifier turns domain events from the notification queues into
// plain-text emails.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/smtp"
	"github.com/mavecode/mavecode-api/internal/models"
)

// NotifierService mails event recipients. Handlers return an error only when
// delivery failed and the message is worth retrying; undecodable payloads are
// logged and dropped.
type NotifierService struct {
	transport  smtp.TransportInterface
	adminEmail string
	log        *slog.Logger
}

// NewNotifierService creates a NotifierService. Contact messages go to
// adminEmail.
func NewNotifierService(transport smtp.TransportInterface, adminEmail string, log *slog.Logger) *NotifierService {
	return &NotifierService{transport: transport, adminEmail: adminEmail, log: log}
}

// HandleContact forwards a contact form message to the admin mailbox.
func (s *NotifierService) HandleContact(body []byte) error {
	const op = "services.notifier.HandleContact"
	var event models.ContactReceivedEvent
	if !s.decode(op, body, &event) {
		return nil
	}
	subject := "[Mavecode] Pesan baru: " + event.Subject
	text := fmt.Sprintf("Pesan dari %s <%s>:\n\n%s", event.Name, event.Email, event.Message)
	return s.send(op, event.ID, s.adminEmail, subject, text)
}

// HandleOrderPaid sends the buyer a receipt.
func (s *NotifierService) HandleOrderPaid(body []byte) error {
	const op = "services.notifier.HandleOrderPaid"
	var event models.OrderPaidEvent
	if !s.decode(op, body, &event) {
		return nil
	}
	subject := "Pembayaran berhasil"
	text := fmt.Sprintf("Halo %s,\n\nPembayaran untuk kursus %s sebesar Rp %.0f telah kami terima.\nAkun kamu sekarang Premium.\n\nNomor pesanan: %s",
		event.Name, event.CourseTitle, event.Amount, event.OrderID)
	return s.send(op, event.OrderID, event.Email, subject, text)
}

// HandleWelcome greets a newly registered user.
func (s *NotifierService) HandleWelcome(body []byte) error {
	const op = "services.notifier.HandleWelcome"
	var event models.UserRegisteredEvent
	if !s.decode(op, body, &event) {
		return nil
	}
	subject := "Selamat datang di Mavecode"
	text := fmt.Sprintf("Halo %s,\n\nTerima kasih sudah bergabung di Mavecode. Mulai belajar dari kursus gratis kami hari ini.", event.Name)
	return s.send(op, event.UserID, event.Email, subject, text)
}

func (s *NotifierService) decode(op string, body []byte, v any) bool {
	if err := json.Unmarshal(body, v); err != nil {
		s.log.Error("dropping undecodable message", slog.String("op", op), sl.Err(err))
		return false
	}
	return true
}

func (s *NotifierService) send(op, ref, to, subject, text string) error {
	log := s.log.With(slog.String("op", op), slog.String("ref", ref))
	if to == "" {
		log.Warn("dropping message without recipient")
		return nil
	}

	from := s.transport.From()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		text,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		log.Error("failed to connect to SMTP server", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer client.Close()

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("%s: mail from: %w", op, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%s: rcpt to: %w", op, err)
	}
	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%s: data: %w", op, err)
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		_ = wc.Close()
		return fmt.Errorf("%s: write: %w", op, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%s: close data: %w", op, err)
	}
	if err := client.Quit(); err != nil {
		log.Warn("failed to quit SMTP session", sl.Err(err))
	}

	log.Info("email sent", slog.String("to", to))
	return nil
}
