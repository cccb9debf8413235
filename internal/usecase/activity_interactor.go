package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

// activityUseCase implements ActivityUseCase
type activityUseCase struct {
	activity ports.ActivityStorage
	logger   *slog.Logger
	now      func() time.Time
}

// NewActivityUseCase создает новый экземпляр ActivityUseCase
func NewActivityUseCase(activity ports.ActivityStorage, logger *slog.Logger) ActivityUseCase {
	return &activityUseCase{
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *activityUseCase) RecordEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	event := &domain.ActivityEvent{
		ID:         payload.EventID,
		EventType:  payload.Type,
		ArtworkID:  payload.ArtworkID,
		ActorEmail: payload.Email,
		OccurredAt: payload.OccurredAt.UTC(),
		ReceivedAt: uc.now().UTC(),
	}
	if err := uc.activity.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("usecase: record %s event for artwork %s: %w", payload.Type, payload.ArtworkID, err)
	}
	return nil
}

// RecentActivity ограничивает limit диапазоном [1, MaxActivityLimit]
func (uc *activityUseCase) RecentActivity(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}

	events, err := uc.activity.ListRecentEvents(ctx, strings.TrimSpace(email), limit)
	if err != nil {
		return nil, fmt.Errorf("usecase: recent activity: %w", err)
	}
	return events, nil
}
