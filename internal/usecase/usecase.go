package usecase

import (
	"context"
	"io"

	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

// Фиксированные лимиты выборок
const (
	ArtistProfileLimit = 3
	FeaturedLimit      = 6
	TrendingLimit      = 3
	TopArtistsLimit    = 4

	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ArtworkUseCase определяет бизнес-логику работы с работами художников
type ArtworkUseCase interface {
	// ListArtworks возвращает все работы, новые первыми
	ListArtworks(ctx context.Context) ([]domain.Artwork, error)

	// ListArtistArtworks возвращает работы художника, новые первыми; при limit 0 без ограничения
	ListArtistArtworks(ctx context.Context, email string, limit int64) ([]domain.Artwork, error)

	// FeaturedArtworks возвращает последние вставленные работы для главной страницы
	FeaturedArtworks(ctx context.Context) ([]domain.Artwork, error)

	// TrendingArtworks возвращает работы с наибольшим числом лайков
	TrendingArtworks(ctx context.Context) ([]domain.Artwork, error)

	// TopArtists агрегирует лайки по художникам
	TopArtists(ctx context.Context) ([]domain.TopArtist, error)

	GetArtwork(ctx context.Context, id string) (*domain.Artwork, error)
	CreateArtwork(ctx context.Context, in domain.ArtworkInput) (*domain.InsertResult, error)
	UpdateArtwork(ctx context.Context, id string, in domain.ArtworkInput) (*domain.UpdateResult, error)
	DeleteArtwork(ctx context.Context, id string) (*domain.DeleteResult, error)
	LikeArtwork(ctx context.Context, id, email string) error

	// AttachImage загружает изображение в файловое хранилище и сохраняет его URL в работе
	AttachImage(ctx context.Context, id string, reader io.Reader, filename, contentType string) (string, error)
}

// FavoriteUseCase определяет бизнес-логику избранного
type FavoriteUseCase interface {
	AddFavorite(ctx context.Context, in domain.FavoriteInput) (*domain.InsertResult, error)
	ListFavorites(ctx context.Context, email string) ([]domain.Favorite, error)
	RemoveFavorite(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// ActivityUseCase определяет логику журнала активности
type ActivityUseCase interface {
	// RecordEvent сохраняет событие, полученное воркером из очереди
	RecordEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error
	RecentActivity(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error)
}
