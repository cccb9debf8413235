package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

type mockArtworkUseCase struct{ mock.Mock }

func (m *mockArtworkUseCase) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *mockArtworkUseCase) ListArtistArtworks(ctx context.Context, email string, limit int64) ([]domain.Artwork, error) {
	args := m.Called(ctx, email, limit)
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *mockArtworkUseCase) FeaturedArtworks(ctx context.Context) ([]domain.Artwork, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *mockArtworkUseCase) TrendingArtworks(ctx context.Context) ([]domain.Artwork, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *mockArtworkUseCase) TopArtists(ctx context.Context) ([]domain.TopArtist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TopArtist), args.Error(1)
}

func (m *mockArtworkUseCase) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Artwork), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkUseCase) CreateArtwork(ctx context.Context, in domain.ArtworkInput) (*domain.InsertResult, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.InsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkUseCase) UpdateArtwork(ctx context.Context, id string, in domain.ArtworkInput) (*domain.UpdateResult, error) {
	args := m.Called(ctx, id, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkUseCase) DeleteArtwork(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtworkUseCase) LikeArtwork(ctx context.Context, id, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

func (m *mockArtworkUseCase) AttachImage(ctx context.Context, id string, reader io.Reader, filename, contentType string) (string, error) {
	args := m.Called(ctx, id, reader, filename, contentType)
	return args.String(0), args.Error(1)
}

type mockFavoriteUseCase struct{ mock.Mock }

func (m *mockFavoriteUseCase) AddFavorite(ctx context.Context, in domain.FavoriteInput) (*domain.InsertResult, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.InsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFavoriteUseCase) ListFavorites(ctx context.Context, email string) ([]domain.Favorite, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *mockFavoriteUseCase) RemoveFavorite(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockActivityUseCase struct{ mock.Mock }

func (m *mockActivityUseCase) RecordEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *mockActivityUseCase) RecentActivity(ctx context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, email, limit)
	return args.Get(0).([]domain.ActivityEvent), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
