package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "cantina"
	ExchangeType = "topic"
)

// dial is replaced in tests.
var dial = amqp.Dial

// retryDelay is the pause before the next connection attempt.
var retryDelay = func(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// SetupConn connects to the broker, making up to attempts tries, and makes
// sure the durable topic exchange exists.
func SetupConn(url string, attempts int) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := dialRetry(url, attempts)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ExchangeName, ExchangeType, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}
	return conn, ch, nil
}

func dialRetry(url string, attempts int) (*amqp.Connection, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := dial(url)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		log.Printf("RabbitMQ dial %d/%d failed: %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(retryDelay(attempt))
		}
	}
	return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", attempts, lastErr)
}

// AMQPPublisher publishes events as JSON on the topic exchange
type AMQPPublisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher connects to url and returns a ready publisher.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, ch, err := SetupConn(url, 5)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt,
		Body:         body,
	}
	return p.ch.PublishWithContext(ctx, ExchangeName, e.Type, false, false, msg)
}

func (p *AMQPPublisher) Close() error {
	p.ch.Close()
	return p.conn.Close()
}
