package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/pkg/rabbitmq"
)

// EventPublisher announces committed student and meeting changes.
type EventPublisher interface {
	Publish(ctx context.Context, event *models.DomainEvent) error
	Close() error
}

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitMQClient struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   zerolog.Logger
}

// NewRabbitMQClient connects to the broker and declares a durable topic
// exchange plus a queue bound to bindingKey, so events survive until a
// consumer attaches.
func NewRabbitMQClient(url, exchange, queueName, bindingKey string, logger zerolog.Logger) (EventPublisher, error) {
	conn, err := rabbitmq.NewConnection(url, "club-meetings")
	if err != nil {
		return nil, err
	}

	channel, err := rabbitmq.NewChannel(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(queue.Name, bindingKey, exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	logger.Info().
		Str("exchange", exchange).
		Str("queue", queue.Name).
		Str("binding_key", bindingKey).
		Msg("Connected to RabbitMQ")

	return &rabbitMQClient{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (c *rabbitMQClient) Publish(ctx context.Context, event *models.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		c.exchange,          // exchange
		event.Type.String(), // routing key
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Type:         event.Type.String(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug().
		Str("event_id", event.EventID).
		Str("event_type", event.Type.String()).
		Int64("entity_id", event.EntityID).
		Msg("Domain event published")

	return nil
}

func (c *rabbitMQClient) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	return nil
}

type noopPublisher struct {
	logger zerolog.Logger
}

// NewNoopPublisher returns a publisher that only logs events. It stands in
// when RabbitMQ is disabled or unreachable.
func NewNoopPublisher(logger zerolog.Logger) EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) Publish(_ context.Context, event *models.DomainEvent) error {
	p.logger.Debug().
		Str("event_type", event.Type.String()).
		Int64("entity_id", event.EntityID).
		Msg("Domain event dropped, no broker configured")
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
