package rabbitmq

import "github.com/mavecode/mavecode-api/internal/models"

// QueueConfig binds a queue to a routing key on Exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Queue names consumed by the notification sender.
const (
	QueueContact = "notification.contact"
	QueueOrder   = "notification.order"
	QueueWelcome = "notification.welcome"
)

// GetNotificationQueues returns one queue per domain event.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: QueueContact, RoutingKey: models.EventContactReceived},
		{QueueName: QueueOrder, RoutingKey: models.EventOrderPaid},
		{QueueName: QueueWelcome, RoutingKey: models.EventUserRegistered},
	}
}
