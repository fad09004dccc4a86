// Package domain defines the transactional outbox event recorded alongside customer writes.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/customers/internal/errors"
)

// OutboxEventStatus is the delivery state of an outbox event.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// ErrEventTypeRequired is returned when an event is built without a type.
var ErrEventTypeRequired = apperrors.Wrap(apperrors.ErrInvalidInput, "event type is required")

// OutboxEvent is a pending notification written in the same transaction as the change it describes.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOutboxEvent builds a pending event with a UUIDv7 ID and payload encoded as JSON.
func NewOutboxEvent(eventType string, payload any) (*OutboxEvent, error) {
	if eventType == "" {
		return nil, ErrEventTypeRequired
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode event payload")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate event id")
	}

	return &OutboxEvent{
		ID:        id,
		EventType: eventType,
		Payload:   string(body),
		Status:    OutboxEventStatusPending,
	}, nil
}

// MarkProcessed flags the event as delivered at the given time.
func (e *OutboxEvent) MarkProcessed(at time.Time) {
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &at
	e.LastError = nil
}

// MarkFailed records a delivery failure. The event stays pending until maxRetries is reached.
func (e *OutboxEvent) MarkFailed(err error, maxRetries int) {
	e.Retries++
	message := err.Error()
	e.LastError = &message
	if e.Retries >= maxRetries {
		e.Status = OutboxEventStatusFailed
	}
}
