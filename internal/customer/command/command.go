// Package command provides the write-side customer collaborators. Every write runs in a
// transaction together with the outbox event that announces it.
package command

import (
	"context"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/database"
	apperrors "github.com/allisson/customers/internal/errors"
	outboxDomain "github.com/allisson/customers/internal/outbox/domain"
)

// CustomerWriter is the write half of the customer repository.
type CustomerWriter interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// OutboxEventWriter records outbox events.
type OutboxEventWriter interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// CreateCustomerCommand persists new customers.
type CreateCustomerCommand struct {
	txManager  database.TxManager
	writer     CustomerWriter
	outboxRepo OutboxEventWriter
}

// NewCreateCustomerCommand creates a new CreateCustomerCommand.
func NewCreateCustomerCommand(
	txManager database.TxManager,
	writer CustomerWriter,
	outboxRepo OutboxEventWriter,
) *CreateCustomerCommand {
	return &CreateCustomerCommand{
		txManager:  txManager,
		writer:     writer,
		outboxRepo: outboxRepo,
	}
}

// Create stores a copy of customer and records a customer.created event. The returned
// entity carries the ID assigned by the store; the argument is left untouched.
func (c *CreateCustomerCommand) Create(
	ctx context.Context,
	customer *domain.Customer,
) (*domain.Customer, error) {
	if customer == nil {
		return nil, domain.ErrCustomerRequired
	}

	persisted := &domain.Customer{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	}

	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := c.writer.Create(ctx, persisted); err != nil {
			return err
		}
		return recordEvent(ctx, c.outboxRepo, domain.EventCustomerCreated, persisted)
	})
	if err != nil {
		return nil, err
	}

	return persisted, nil
}

// DeleteCustomerCommand removes customers.
type DeleteCustomerCommand struct {
	txManager  database.TxManager
	writer     CustomerWriter
	outboxRepo OutboxEventWriter
}

// NewDeleteCustomerCommand creates a new DeleteCustomerCommand.
func NewDeleteCustomerCommand(
	txManager database.TxManager,
	writer CustomerWriter,
	outboxRepo OutboxEventWriter,
) *DeleteCustomerCommand {
	return &DeleteCustomerCommand{
		txManager:  txManager,
		writer:     writer,
		outboxRepo: outboxRepo,
	}
}

// Delete removes customer and records a customer.deleted event.
func (c *DeleteCustomerCommand) Delete(ctx context.Context, customer *domain.Customer) error {
	if customer == nil {
		return domain.ErrCustomerRequired
	}

	return c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := c.writer.Delete(ctx, customer.ID); err != nil {
			return err
		}
		return recordEvent(ctx, c.outboxRepo, domain.EventCustomerDeleted, customer)
	})
}

func recordEvent(
	ctx context.Context,
	outboxRepo OutboxEventWriter,
	eventType string,
	customer *domain.Customer,
) error {
	event, err := outboxDomain.NewOutboxEvent(eventType, domain.NewCustomerEventPayload(customer))
	if err != nil {
		return err
	}

	if err := outboxRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}
