// Package smtp dials the mail server used by the notification sender.
package smtp

import "io"

// Client is the part of *smtp.Client the sender uses.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface opens authenticated SMTP sessions.
type TransportInterface interface {
	Connect() (Client, error)
	From() string
}
