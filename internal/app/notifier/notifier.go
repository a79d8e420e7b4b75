// Package notifier assembles the mail sender process: it consumes the
// notification queues and mails through SMTP.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/mavecode/mavecode-api/internal/config"
	"github.com/mavecode/mavecode-api/internal/lib/rabbitmq"
	"github.com/mavecode/mavecode-api/internal/lib/sl"
	"github.com/mavecode/mavecode-api/internal/lib/smtp"
	notifierservice "github.com/mavecode/mavecode-api/internal/services/notifier"
)

type App struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	notifier *notifierservice.NotifierService
	logger   *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.notifier.New"

	if cfg.RabbitMQ.URL == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("rabbitmq url is not configured"))
	}
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	return &App{
		conn:     conn,
		ch:       ch,
		notifier: notifierservice.NewNotifierService(transport, cfg.SMTP.AdminEmail, logger),
		logger:   logger,
	}, nil
}

// Run consumes until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	consumers := map[string]func([]byte) error{
		rabbitmq.QueueContact: a.notifier.HandleContact,
		rabbitmq.QueueOrder:   a.notifier.HandleOrderPaid,
		rabbitmq.QueueWelcome: a.notifier.HandleWelcome,
	}
	for queue, handler := range consumers {
		if err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, queue, handler); err != nil {
			a.logger.Error("failed to start consumer", slog.String("queue", queue), sl.Err(err))
			a.close()
			return err
		}
		a.logger.Info("consuming", slog.String("queue", queue))
	}

	<-ctx.Done()
	a.logger.Info("notifier shutting down gracefully")
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}
