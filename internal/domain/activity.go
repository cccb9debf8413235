package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType задаёт тип события над работой или избранным
type EventType string

const (
	EventArtworkCreated  EventType = "artwork.created"
	EventArtworkUpdated  EventType = "artwork.updated"
	EventArtworkDeleted  EventType = "artwork.deleted"
	EventArtworkLiked    EventType = "artwork.liked"
	EventFavoriteAdded   EventType = "favorite.added"
	EventFavoriteRemoved EventType = "favorite.removed"
)

// Valid сообщает, известен ли тип события
func (t EventType) Valid() bool {
	switch t {
	case EventArtworkCreated, EventArtworkUpdated, EventArtworkDeleted,
		EventArtworkLiked, EventFavoriteAdded, EventFavoriteRemoved:
		return true
	}
	return false
}

// ActivityEvent представляет запись журнала активности,
// соответствует таблице artwork_events в PostgreSQL
type ActivityEvent struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	EventType  EventType `json:"eventType" db:"event_type"`
	ArtworkID  string    `json:"artworkId" db:"artwork_id"`
	ActorEmail string    `json:"actorEmail,omitempty" db:"actor_email"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
	ReceivedAt time.Time `json:"receivedAt" db:"received_at"`
}

func (ActivityEvent) TableName() string {
	return "artwork_events"
}
