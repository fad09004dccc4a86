package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/customers/internal/app"
	"github.com/allisson/customers/internal/config"
	outboxUsecase "github.com/allisson/customers/internal/outbox/usecase"
)

// RunWorker delivers outbox events until SIGINT/SIGTERM.
func RunWorker(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.OutboxUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox use case: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runWorkerLoop(ctx, useCase, logger)
}

// runWorkerLoop runs the outbox loop and treats cancellation as a clean stop.
func runWorkerLoop(ctx context.Context, useCase outboxUsecase.UseCase, logger *slog.Logger) error {
	logger.Info("starting outbox worker")

	err := useCase.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox worker stopped: %w", err)
	}

	logger.Info("outbox worker stopped")
	return nil
}
