package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type ActivityStorage struct {
	db     *sqlx.DB
	gorm   *gorm.DB
	logger *slog.Logger
}

func NewActivityStorage(db *sqlx.DB, gdb *gorm.DB, logger *slog.Logger) *ActivityStorage {
	return &ActivityStorage{db: db, gorm: gdb, logger: logger}
}

var _ ports.ActivityStorage = (*ActivityStorage)(nil)

// SaveEvent сохраняет событие; повторная доставка того же id игнорируется
func (s *ActivityStorage) SaveEvent(ctx context.Context, event *domain.ActivityEvent) error {
	start := time.Now()

	query := `
	INSERT INTO artwork_events (id, event_type, artwork_id, actor_email, occurred_at, received_at)
	VALUES (:id, :event_type, :artwork_id, :actor_email, :occurred_at, :received_at)
	ON CONFLICT (id) DO NOTHING
	`

	if _, err := s.db.NamedExecContext(ctx, query, event); err != nil {
		s.logger.Error("failed to save activity event",
			"type", event.EventType,
			"artwork_id", event.ArtworkID,
			"error", err,
		)
		return fmt.Errorf("save activity event: %w", err)
	}

	s.logger.Info("activity event saved",
		"id", event.ID,
		"type", event.EventType,
		"artwork_id", event.ArtworkID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListRecentEvents возвращает последние события, при непустом actorEmail только его события
func (s *ActivityStorage) ListRecentEvents(ctx context.Context, actorEmail string, limit int) ([]domain.ActivityEvent, error) {
	start := time.Now()

	events := []domain.ActivityEvent{}
	q := s.gorm.WithContext(ctx).Order("occurred_at DESC").Limit(limit)
	if actorEmail != "" {
		q = q.Where("actor_email = ?", actorEmail)
	}

	if result := q.Find(&events); result.Error != nil {
		s.logger.Error("failed to list activity events", "actor_email", actorEmail, "error", result.Error)
		return nil, fmt.Errorf("list activity events: %w", result.Error)
	}

	s.logger.Debug("activity events listed",
		"actor_email", actorEmail,
		"count", len(events),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return events, nil
}
