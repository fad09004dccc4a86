// Package usecase relays outbox events written by customer commands to an EventProcessor.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/allisson/customers/internal/database"
	"github.com/allisson/customers/internal/outbox/domain"
)

// Config holds outbox worker settings.
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// OutboxEventRepository defines outbox event persistence operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
	DeleteProcessedOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// EventProcessor delivers a single outbox event.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase defines the outbox worker operations.
type UseCase interface {
	// Start polls for pending events every Interval until ctx is cancelled.
	Start(ctx context.Context) error
	// ProcessEvents delivers one batch of pending events inside a transaction.
	ProcessEvents(ctx context.Context) error
	// CleanProcessed removes processed events older than days. dryRun only counts them.
	CleanProcessed(ctx context.Context, days int, dryRun bool) (int64, error)
}

// OutboxUseCase implements UseCase.
type OutboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	logger         *slog.Logger
}

// NewOutboxUseCase creates a new OutboxUseCase.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OutboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		logger:         logger,
	}
}

// Start runs the polling loop. It returns ctx.Err() once ctx is done.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	uc.logger.Info("starting outbox event processor",
		slog.Duration("interval", uc.config.Interval),
		slog.Int("batch_size", uc.config.BatchSize),
		slog.Int("max_retries", uc.config.MaxRetries),
	)

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("stopping outbox event processor")
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				uc.logger.Error("failed to process events", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents loads up to BatchSize pending events and hands each to the processor.
// A failed delivery increments the event's retry counter instead of aborting the batch.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		uc.logger.Info("processing events", slog.Int("count", len(events)))

		for _, event := range events {
			if err := uc.eventProcessor.Process(ctx, event); err != nil {
				uc.logger.Error("failed to process event",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", event.EventType),
					slog.Int("retries", event.Retries+1),
					slog.Any("error", err),
				)
				event.MarkFailed(err, uc.config.MaxRetries)
			} else {
				event.MarkProcessed(time.Now().UTC())
			}

			if err := uc.outboxRepo.Update(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

// CleanProcessed deletes processed events older than the given number of days.
func (uc *OutboxUseCase) CleanProcessed(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("days must be a positive number, got: %d", days)
	}

	olderThan := time.Now().UTC().AddDate(0, 0, -days)
	return uc.outboxRepo.DeleteProcessedOlderThan(ctx, olderThan, dryRun)
}
