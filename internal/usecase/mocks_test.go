package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

type mockArtworkStorage struct{ mock.Mock }

func (m *mockArtworkStorage) FindArtworks(ctx context.Context, q ports.ArtworkQuery) ([]domain.Artwork, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *mockArtworkStorage) GetArtworkByID(ctx context.Context, id primitive.ObjectID) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Artwork), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkStorage) ArtworkExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockArtworkStorage) InsertArtwork(ctx context.Context, in domain.ArtworkInput, createdAt time.Time) (*domain.InsertResult, error) {
	args := m.Called(ctx, in, createdAt)
	if r := args.Get(0); r != nil {
		return r.(*domain.InsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkStorage) UpdateArtwork(ctx context.Context, id primitive.ObjectID, in domain.ArtworkInput) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkStorage) DeleteArtwork(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkStorage) LikeArtwork(ctx context.Context, id primitive.ObjectID, email string) (bool, error) {
	args := m.Called(ctx, id, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockArtworkStorage) TopArtists(ctx context.Context, limit int64) ([]domain.TopArtist, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.TopArtist), args.Error(1)
}

type mockFavoriteStorage struct{ mock.Mock }

func (m *mockFavoriteStorage) InsertFavorite(ctx context.Context, fav *domain.Favorite) (*domain.InsertResult, error) {
	args := m.Called(ctx, fav)
	if r := args.Get(0); r != nil {
		return r.(*domain.InsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFavoriteStorage) FindFavoritesByUser(ctx context.Context, email string) ([]domain.Favorite, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *mockFavoriteStorage) DeleteFavorite(ctx context.Context, id primitive.ObjectID) (*domain.Favorite, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*domain.Favorite), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockActivityStorage struct{ mock.Mock }

func (m *mockActivityStorage) SaveEvent(ctx context.Context, event *domain.ActivityEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockActivityStorage) ListRecentEvents(ctx context.Context, actorEmail string, limit int) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, actorEmail, limit)
	return args.Get(0).([]domain.ActivityEvent), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishArtworkEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetTopArtists(ctx context.Context) ([]domain.TopArtist, bool, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]domain.TopArtist)
	return artists, args.Bool(1), args.Error(2)
}

func (m *mockCache) SetTopArtists(ctx context.Context, artists []domain.TopArtist) error {
	return m.Called(ctx, artists).Error(0)
}

func (m *mockCache) InvalidateTopArtists(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockFileStorage struct{ mock.Mock }

func (m *mockFileStorage) UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteFile(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// eventOfType сопоставляет payload по типу события; у опубликованного события всегда есть eventId
func eventOfType(t string) interface{} {
	return mock.MatchedBy(func(p payloads.ArtworkEventPayload) bool {
		return string(p.Type) == t && p.EventID != uuid.Nil
	})
}
