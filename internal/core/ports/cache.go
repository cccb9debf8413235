package ports

import (
	"context"

	"github.com/GoArmGo/artgallery/internal/domain"
)

// TopArtistsCache кэширует результат агрегации топ-художников
type TopArtistsCache interface {
	// GetTopArtists возвращает false при промахе
	GetTopArtists(ctx context.Context) ([]domain.TopArtist, bool, error)
	SetTopArtists(ctx context.Context, artists []domain.TopArtist) error
	InvalidateTopArtists(ctx context.Context) error
}
