package rabbitmq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultHeartbeat = 10 * time.Second

// DialConfig names the connection so it can be told apart in the broker's
// management UI.
func DialConfig(connectionName string) amqp.Config {
	props := amqp.NewConnectionProperties()
	if connectionName != "" {
		props.SetClientConnectionName(connectionName)
	}

	return amqp.Config{
		Heartbeat:  defaultHeartbeat,
		Locale:     "en_US",
		Properties: props,
	}
}

func NewConnection(url, connectionName string) (*amqp.Connection, error) {
	conn, err := amqp.DialConfig(url, DialConfig(connectionName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// NewChannel opens a channel on conn. A failure leaves conn open for the
// caller to close.
func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	if conn == nil || conn.IsClosed() {
		return nil, fmt.Errorf("failed to open channel: connection is closed")
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return channel, nil
}
