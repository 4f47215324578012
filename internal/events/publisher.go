// Package events publishes reservation lifecycle events for external
// collaborators (notification dispatchers and the like). Publishing is
// asynchronous and best-effort: the booking transaction never depends
// on it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyReservationCreated = "reservation.created"

// Logger is the logging interface the publisher needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReservationCreated is the event payload emitted after a successful
// booking commit.
type ReservationCreated struct {
	ReservationID string    `json:"reservationId"`
	ProfessorID   string    `json:"professorId"`
	StudentID     string    `json:"studentId"`
	ProfessorName string    `json:"professorName"`
	StudentName   string    `json:"studentName"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
}

// Publisher sends events somewhere. The booking use case only sees
// this interface.
type Publisher interface {
	PublishReservationCreated(ctx context.Context, ev ReservationCreated)
	Close() error
}

// AMQPPublisher publishes to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   Logger
}

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url, exchange string, logger Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: declare exchange %q: %w", exchange, err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishReservationCreated emits the event. Failures are logged and
// swallowed: the reservation is already committed and must not be
// reported as failed because a broker hiccuped.
func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, ev ReservationCreated) {
	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("events: marshal reservation.created id=%s: %v", ev.ReservationID, err)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKeyReservationCreated, false, false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		})
	if err != nil {
		p.logger.Error("events: publish reservation.created id=%s: %v", ev.ReservationID, err)
		return
	}

	p.logger.Info("events: published reservation.created id=%s", ev.ReservationID)
}

// Close closes the channel and connection.
func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// NoopPublisher is used when event publishing is disabled.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops everything.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (*NoopPublisher) PublishReservationCreated(context.Context, ReservationCreated) {}

func (*NoopPublisher) Close() error { return nil }
