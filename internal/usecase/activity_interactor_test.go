package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/logger"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

func TestActivityUseCase_RecordEvent(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2026, 5, 4, 9, 59, 0, 0, time.UTC)

	t.Run("saves event", func(t *testing.T) {
		store := &mockActivityStorage{}
		uc := NewActivityUseCase(store, logger.Discard()).(*activityUseCase)
		uc.now = func() time.Time { return fixedNow }

		var saved *domain.ActivityEvent
		store.On("SaveEvent", ctx, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.ActivityEvent)
		}).Return(nil)

		eventID := uuid.New()
		err := uc.RecordEvent(ctx, payloads.ArtworkEventPayload{
			EventID:    eventID,
			Type:       domain.EventArtworkLiked,
			ArtworkID:  "art1",
			Email:      "u@x.com",
			OccurredAt: occurred,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, eventID, saved.ID)
		assert.Equal(t, domain.EventArtworkLiked, saved.EventType)
		assert.Equal(t, "u@x.com", saved.ActorEmail)
		assert.Equal(t, occurred, saved.OccurredAt)
		assert.Equal(t, fixedNow, saved.ReceivedAt)
		store.AssertExpectations(t)
	})

	t.Run("redelivery keeps event id", func(t *testing.T) {
		store := &mockActivityStorage{}
		uc := NewActivityUseCase(store, logger.Discard())

		var ids []uuid.UUID
		store.On("SaveEvent", ctx, mock.Anything).Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.ActivityEvent).ID)
		}).Return(nil).Twice()

		p := payloads.ArtworkEventPayload{
			EventID:    uuid.New(),
			Type:       domain.EventArtworkLiked,
			ArtworkID:  "art1",
			Email:      "u@x.com",
			OccurredAt: occurred,
		}
		require.NoError(t, uc.RecordEvent(ctx, p))
		require.NoError(t, uc.RecordEvent(ctx, p))

		require.Len(t, ids, 2)
		assert.Equal(t, p.EventID, ids[0])
		assert.Equal(t, ids[0], ids[1])
		store.AssertExpectations(t)
	})

	t.Run("payload without event id is rejected", func(t *testing.T) {
		store := &mockActivityStorage{}
		uc := NewActivityUseCase(store, logger.Discard())

		err := uc.RecordEvent(ctx, payloads.ArtworkEventPayload{Type: domain.EventArtworkLiked, ArtworkID: "a", OccurredAt: occurred})
		assert.ErrorIs(t, err, payloads.ErrInvalidPayload)
		store.AssertNotCalled(t, "SaveEvent", mock.Anything, mock.Anything)
	})

	t.Run("invalid payload is rejected", func(t *testing.T) {
		store := &mockActivityStorage{}
		uc := NewActivityUseCase(store, logger.Discard())

		err := uc.RecordEvent(ctx, payloads.ArtworkEventPayload{EventID: uuid.New(), Type: "bogus", ArtworkID: "a", OccurredAt: occurred})
		assert.ErrorIs(t, err, payloads.ErrInvalidPayload)
		store.AssertNotCalled(t, "SaveEvent", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		store := &mockActivityStorage{}
		store.On("SaveEvent", ctx, mock.Anything).Return(errors.New("conn reset"))
		uc := NewActivityUseCase(store, logger.Discard())

		err := uc.RecordEvent(ctx, payloads.ArtworkEventPayload{EventID: uuid.New(), Type: domain.EventArtworkCreated, ArtworkID: "a", OccurredAt: occurred})
		assert.ErrorContains(t, err, "conn reset")
	})
}

func TestActivityUseCase_RecentActivity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, DefaultActivityLimit},
		{"negative", -5, DefaultActivityLimit},
		{"in range", 7, 7},
		{"clamped", 1000, MaxActivityLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockActivityStorage{}
			store.On("ListRecentEvents", ctx, "u@x.com", tt.wantLimit).Return([]domain.ActivityEvent{}, nil)
			uc := NewActivityUseCase(store, logger.Discard())

			_, err := uc.RecentActivity(ctx, " u@x.com ", tt.limit)
			require.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}
