package ports

import (
	"context"

	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

// ArtworkEventPublisher публикует события над работами и избранным
type ArtworkEventPublisher interface {
	PublishArtworkEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error
}

// ArtworkEventConsumer используется воркером для получения событий из очереди
type ArtworkEventConsumer interface {
	// StartConsumingArtworkEvents начинает прослушивание очереди,
	// handler вызывается для каждого корректного сообщения
	StartConsumingArtworkEvents(ctx context.Context, handler func(context.Context, payloads.ArtworkEventPayload) error) error
}
