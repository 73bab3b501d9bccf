// Package events publishes domain events about work orders and tickets.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"condo-maintenance-backend/internal/logger"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=events.go -destination=../mocks/events_mocks.go -package=mocks

// Event types
const (
	WorkOrderCreated       = "os.criada"
	WorkOrderStatusChanged = "os.status_alterado"
	TicketOpened           = "chamado.aberto"
	TicketConverted        = "chamado.convertido"
)

// Event is the JSON envelope placed on the queue
type Event struct {
	ID            uuid.UUID      `json:"id"`
	Type          string         `json:"tipo"`
	CondominiumID uuid.UUID      `json:"condominio_id"`
	EntityID      uuid.UUID      `json:"entidade_id"`
	Payload       map[string]any `json:"dados,omitempty"`
	OccurredAt    time.Time      `json:"ocorrido_em"`
}

// Publisher delivers events; implementations must be safe for concurrent use
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New builds a RabbitMQ publisher when url is set and a no-op one otherwise
func New(url, queue string) (Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return DialRabbitMQ(url, queue)
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

// channel is the subset of *amqp.Channel the publisher needs
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends persistent JSON messages to one durable queue
type RabbitMQPublisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
	mu    sync.Mutex
}

// DialRabbitMQ connects, opens a channel and declares the queue
func DialRabbitMQ(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newRabbitMQPublisher(ch, queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(ch channel, queue string) (*RabbitMQPublisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &RabbitMQPublisher{ch: ch, queue: queue}, nil
}

// Publish fills in ID and time when missing and sends the event
func (p *RabbitMQPublisher) Publish(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// PublishAsync sends the event without blocking the caller. Failures are logged;
// a lost event never fails the write that produced it.
func PublishAsync(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	// detach from request cancellation but keep logging fields
	bg := context.WithoutCancel(ctx)
	go func() {
		pctx, cancel := context.WithTimeout(bg, 5*time.Second)
		defer cancel()
		if err := p.Publish(pctx, event); err != nil {
			logger.WithContext(bg).WithError(err).WithField("event", event.Type).Warn("failed to publish event")
		}
	}()
}
