// Package broker publishes stay and invoice notifications to RabbitMQ.
// Messages go to one durable topic exchange with the notification topic as
// routing key, so consumers bind queues to the topics they care about.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher implements service.Publisher on one long-lived connection.
// An amqp channel is not safe for concurrent publishes, so calls are serialised.
type AMQPPublisher struct {
	exchange string
	conn     *amqp.Connection

	mu sync.Mutex
	ch channel

	now   func() time.Time
	newID func() string
}

// Dial connects to url, opens a channel and declares exchange as a durable
// topic exchange. Declaring is idempotent.
func Dial(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("broker.Dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker.Dial: opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("broker.Dial: declaring exchange %q: %w", exchange, err)
	}

	p := newPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{
		exchange: exchange,
		ch:       ch,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Publish sends payload as a persistent JSON message routed by topic.
func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload any) error {
	msg, err := p.message(topic, payload)
	if err != nil {
		return fmt.Errorf("broker.AMQPPublisher.Publish: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	); err != nil {
		return fmt.Errorf("broker.AMQPPublisher.Publish: %s: %w", topic, err)
	}
	return nil
}

func (p *AMQPPublisher) message(topic string, payload any) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encoding %s payload: %w", topic, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    p.newID(),
		Timestamp:    p.now(),
		Type:         topic,
		Body:         body,
	}, nil
}

// Close closes the channel and then the connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("broker.AMQPPublisher.Close: %w", err)
	}
	return nil
}
