package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/streadway/amqp"

	apperrors "github.com/allisson/customers/internal/errors"
	"github.com/allisson/customers/internal/outbox/domain"
)

// LoggingEventProcessor writes each event to the application log.
type LoggingEventProcessor struct {
	logger *slog.Logger
}

// NewLoggingEventProcessor creates a new LoggingEventProcessor.
func NewLoggingEventProcessor(logger *slog.Logger) *LoggingEventProcessor {
	return &LoggingEventProcessor{logger: logger}
}

// Process logs the event. A payload that is not valid JSON is rejected so the event is retried.
func (p *LoggingEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	var payload map[string]any
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return apperrors.Wrap(err, "invalid event payload")
	}

	p.logger.InfoContext(ctx, "customer event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.EventType),
		slog.Any("payload", payload),
	)
	return nil
}

// Publisher is the subset of *amqp.Channel used to publish events.
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueueDeclarer is the subset of *amqp.Channel used to declare the destination queue.
type QueueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// DeclareQueue declares a durable queue and returns its name.
func DeclareQueue(declarer QueueDeclarer, name string) (string, error) {
	queue, err := declarer.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to declare queue %s", name)
	}
	return queue.Name, nil
}

// AMQPEventProcessor publishes events to a queue on the default exchange.
type AMQPEventProcessor struct {
	publisher Publisher
	queue     string
	logger    *slog.Logger
}

// NewAMQPEventProcessor creates a new AMQPEventProcessor publishing to queue.
func NewAMQPEventProcessor(publisher Publisher, queue string, logger *slog.Logger) *AMQPEventProcessor {
	return &AMQPEventProcessor{
		publisher: publisher,
		queue:     queue,
		logger:    logger,
	}
}

// Process publishes the event payload as a persistent JSON message.
func (p *AMQPEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Type:         event.EventType,
		Timestamp:    event.CreatedAt,
		Body:         []byte(event.Payload),
	}

	if err := p.publisher.Publish("", p.queue, false, false, msg); err != nil {
		return apperrors.Wrapf(err, "failed to publish event %s", event.ID)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("event_id", event.ID.String()),
		slog.String("queue", p.queue),
	)
	return nil
}
