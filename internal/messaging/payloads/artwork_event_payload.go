package payloads

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/artgallery/internal/domain"
)

var ErrInvalidPayload = errors.New("invalid artwork event payload")

// ArtworkEventPayload описывает событие над работой, передаётся через RabbitMQ.
// EventID назначается при публикации и служит ключом записи в журнале,
// поэтому повторная доставка того же сообщения не создаёт вторую строку.
type ArtworkEventPayload struct {
	EventID    uuid.UUID        `json:"eventId"`
	Type       domain.EventType `json:"type"`
	ArtworkID  string           `json:"artworkId"`
	Email      string           `json:"email,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// Validate проверяет, что сообщение можно записать в журнал
func (p ArtworkEventPayload) Validate() error {
	if p.EventID == uuid.Nil {
		return fmt.Errorf("%w: empty eventId", ErrInvalidPayload)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, p.Type)
	}
	if p.ArtworkID == "" {
		return fmt.Errorf("%w: empty artworkId", ErrInvalidPayload)
	}
	if p.OccurredAt.IsZero() {
		return fmt.Errorf("%w: empty occurredAt", ErrInvalidPayload)
	}
	return nil
}
