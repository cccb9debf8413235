package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
	"github.com/GoArmGo/artgallery/internal/metrics"
	"github.com/GoArmGo/artgallery/internal/usecase"
)

// eventHandler записывает событие из очереди в журнал активности
func eventHandler(activity usecase.ActivityUseCase, m *metrics.Metrics, logger *slog.Logger) func(context.Context, payloads.ArtworkEventPayload) error {
	return func(ctx context.Context, payload payloads.ArtworkEventPayload) error {
		err := activity.RecordEvent(ctx, payload)
		if m != nil {
			m.ObserveEvent(string(payload.Type), err)
		}
		if err != nil {
			logger.Error("failed to record artwork event",
				"type", payload.Type,
				"artwork_id", payload.ArtworkID,
				"error", err,
			)
			return err
		}
		logger.Debug("artwork event recorded", "type", payload.Type, "artwork_id", payload.ArtworkID)
		return nil
	}
}

// runWorker потребляет события RabbitMQ до отмены ctx
func runWorker(
	ctx context.Context,
	consumer ports.ArtworkEventConsumer,
	activity usecase.ActivityUseCase,
	m *metrics.Metrics,
	logger *slog.Logger,
) error {
	if consumer == nil || activity == nil {
		return errors.New("worker mode requires RABBITMQ_URL and DATABASE_URL")
	}

	if err := consumer.StartConsumingArtworkEvents(ctx, eventHandler(activity, m, logger)); err != nil {
		return fmt.Errorf("start RabbitMQ consumer: %w", err)
	}

	logger.Info("worker started, waiting for messages")
	<-ctx.Done()
	logger.Info("worker stopped")
	return nil
}
