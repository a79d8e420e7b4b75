package smtp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/mavecode/mavecode-api/internal/config"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
)

const (
	dialTimeout = 10 * time.Second
	// Port 465 speaks TLS from the first byte; every other port must offer
	// STARTTLS.
	implicitTLSPort = "465"
)

// Transport dials the configured server, secures the session and
// authenticates.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

// NewTransport returns a Transport for cfg.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Connect opens a session ready for MAIL FROM.
func (t *Transport) Connect() (Client, error) {
	const op = "smtp.Connect"
	addr := net.JoinHostPort(t.cfg.Host, t.cfg.Port)
	tlsConfig := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}

	conn, err := t.dial(addr, tlsConfig)
	if err != nil {
		t.log.Error("failed to dial SMTP server", slog.String("addr", addr), sl.Err(err))
		return nil, fmt.Errorf("%s: failed to dial SMTP server: %w", op, err)
	}

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to create SMTP client: %w", op, err)
	}

	if err := t.secure(client, tlsConfig); err != nil {
		t.log.Error("SMTP session rejected", slog.String("addr", addr), sl.Err(err))
		if closeErr := client.Close(); closeErr != nil {
			t.log.Warn("failed to close SMTP client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// From returns the envelope sender.
func (t *Transport) From() string {
	return t.cfg.User
}

func (t *Transport) dial(addr string, tlsConfig *tls.Config) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}
	if t.cfg.Port == implicitTLSPort {
		return tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	}
	return dialer.Dial("tcp", addr)
}

// secure upgrades a plain session with STARTTLS, then authenticates when a
// user is configured.
func (t *Transport) secure(client *smtp.Client, tlsConfig *tls.Config) error {
	if t.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("smtp server does not support STARTTLS")
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}
	if t.cfg.User == "" {
		return nil
	}
	if err := client.Auth(smtp.PlainAuth("", t.cfg.User, t.cfg.Pass, t.cfg.Host)); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	return nil
}
