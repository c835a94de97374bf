// Package broker publishes outbox events onto the messaging fabric. It
// owns exactly one durable connection and channel for the lifetime of
// the process; the dispatcher is the only caller.
package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/google/uuid"
)

const notificationExchange = "notifications"

// Publisher publishes email-notification events to a direct exchange
// under the single fixed routing key identity.email; the recipient's
// address travels in the payload, not in the routing key.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *logger.Logger
}

// NewPublisher dials the broker and declares the exchange this module owns.
func NewPublisher(cfg config.BrokerConfig, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("broker: dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker: channel open failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		notificationExchange,
		"direct",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("broker: exchange declare failed: %w", err)
	}

	log.Info("broker connection established")

	return &Publisher{conn: conn, ch: ch, logger: log}, nil
}

// PublishEmailNotification routes the message on identity.email, the
// fixed routing key bound by the identity service's notification queue.
func (p *Publisher) PublishEmailNotification(ctx context.Context, messageID uuid.UUID, payload json.RawMessage) error {
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID.String(),
		Body:         payload,
	}

	if err := p.ch.PublishWithContext(ctx, notificationExchange, "identity.email", false, false, pub); err != nil {
		p.logger.Error("broker publish failed", logger.String("message_id", messageID.String()))
		return fmt.Errorf("broker: publish failed: %w", err)
	}

	return nil
}

// Health reports whether the broker connection is still open.
func (p *Publisher) Health(ctx context.Context) error {
	if p.conn.IsClosed() {
		return fmt.Errorf("broker: connection closed")
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
