package ports

import (
	"context"
	"errors"
	"time"

	"github.com/GoArmGo/artgallery/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateKey возвращается хранилищем при нарушении уникального индекса
var ErrDuplicateKey = errors.New("duplicate key")

// ArtworkSort задаёт порядок выборки работ
type ArtworkSort int

const (
	SortNewest    ArtworkSort = iota // createdAt по убыванию
	SortInserted                     // _id по убыванию (порядок вставки)
	SortMostLiked                    // likes по убыванию
)

// ArtworkQuery описывает фильтр и лимит выборки работ.
// Пустой ArtistEmail означает выборку без фильтра, Limit 0 означает выборку без лимита.
type ArtworkQuery struct {
	ArtistEmail string
	Sort        ArtworkSort
	Limit       int64
}

// ArtworkStorage определяет методы для взаимодействия с коллекцией artworks
type ArtworkStorage interface {
	FindArtworks(ctx context.Context, q ArtworkQuery) ([]domain.Artwork, error)
	// GetArtworkByID возвращает nil, nil если работы нет
	GetArtworkByID(ctx context.Context, id primitive.ObjectID) (*domain.Artwork, error)
	ArtworkExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	InsertArtwork(ctx context.Context, in domain.ArtworkInput, createdAt time.Time) (*domain.InsertResult, error)
	UpdateArtwork(ctx context.Context, id primitive.ObjectID, in domain.ArtworkInput) (*domain.UpdateResult, error)
	DeleteArtwork(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
	// LikeArtwork атомарно увеличивает likes и добавляет email в likedBy,
	// только если email там ещё нет. false, если ни один документ не подошёл.
	LikeArtwork(ctx context.Context, id primitive.ObjectID, email string) (bool, error)
	TopArtists(ctx context.Context, limit int64) ([]domain.TopArtist, error)
}

// FavoriteStorage определяет методы для взаимодействия с коллекцией favorites
type FavoriteStorage interface {
	// InsertFavorite возвращает ErrDuplicateKey, если пара artworkId+userEmail уже есть
	InsertFavorite(ctx context.Context, fav *domain.Favorite) (*domain.InsertResult, error)
	FindFavoritesByUser(ctx context.Context, email string) ([]domain.Favorite, error)
	// DeleteFavorite возвращает удалённую запись или nil, если удалять было нечего
	DeleteFavorite(ctx context.Context, id primitive.ObjectID) (*domain.Favorite, error)
}

// ActivityStorage определяет методы для журнала активности
type ActivityStorage interface {
	SaveEvent(ctx context.Context, event *domain.ActivityEvent) error
	ListRecentEvents(ctx context.Context, actorEmail string, limit int) ([]domain.ActivityEvent, error)
}
