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
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/logger"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

func newFavoriteFixture(t *testing.T) (*favoriteUseCase, *mockFavoriteStorage, *mockPublisher) {
	t.Helper()
	store := &mockFavoriteStorage{}
	events := &mockPublisher{}
	uc := NewFavoriteUseCase(store, events, logger.Discard()).(*favoriteUseCase)
	uc.now = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		store.AssertExpectations(t)
		events.AssertExpectations(t)
	})
	return uc, store, events
}

func TestFavoriteUseCase_AddFavorite(t *testing.T) {
	ctx := context.Background()
	in := domain.FavoriteInput{
		ArtworkID:  "art1",
		UserEmail:  "u@x.com",
		Title:      "T",
		Image:      "i.png",
		Category:   "oil",
		ArtistName: "Ann",
	}

	t.Run("blank email", func(t *testing.T) {
		uc, _, _ := newFavoriteFixture(t)
		_, err := uc.AddFavorite(ctx, domain.FavoriteInput{ArtworkID: "art1"})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("stores display copy without category", func(t *testing.T) {
		uc, store, events := newFavoriteFixture(t)
		want := &domain.Favorite{
			ArtworkID:  "art1",
			UserEmail:  "u@x.com",
			Title:      "T",
			Image:      "i.png",
			ArtistName: "Ann",
			CreatedAt:  fixedNow,
		}
		store.On("InsertFavorite", ctx, want).Return(&domain.InsertResult{Acknowledged: true, InsertedID: "f1"}, nil)
		events.On("PublishArtworkEvent", ctx, mock.MatchedBy(func(p payloads.ArtworkEventPayload) bool {
			return p.EventID != uuid.Nil &&
				p.Type == domain.EventFavoriteAdded &&
				p.ArtworkID == "art1" &&
				p.Email == "u@x.com" &&
				p.OccurredAt.Equal(fixedNow)
		})).Return(nil)

		res, err := uc.AddFavorite(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "f1", res.InsertedID)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		uc, store, _ := newFavoriteFixture(t)
		store.On("InsertFavorite", ctx, mock.Anything).Return(nil, ports.ErrDuplicateKey)

		_, err := uc.AddFavorite(ctx, in)
		assert.ErrorIs(t, err, ErrAlreadyFavorited)
	})

	t.Run("storage error", func(t *testing.T) {
		uc, store, _ := newFavoriteFixture(t)
		store.On("InsertFavorite", ctx, mock.Anything).Return(nil, errors.New("write concern"))

		_, err := uc.AddFavorite(ctx, in)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrAlreadyFavorited)
	})
}

func TestFavoriteUseCase_ListFavorites(t *testing.T) {
	ctx := context.Background()

	t.Run("no email returns empty without query", func(t *testing.T) {
		uc, _, _ := newFavoriteFixture(t)
		favs, err := uc.ListFavorites(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, favs)
		assert.Empty(t, favs)
	})

	t.Run("by user", func(t *testing.T) {
		uc, store, _ := newFavoriteFixture(t)
		store.On("FindFavoritesByUser", ctx, "u@x.com").Return([]domain.Favorite{{ArtworkID: "art1"}}, nil)

		favs, err := uc.ListFavorites(ctx, "u@x.com")
		require.NoError(t, err)
		assert.Len(t, favs, 1)
	})
}

func TestFavoriteUseCase_RemoveFavorite(t *testing.T) {
	ctx := context.Background()
	oid := primitive.NewObjectID()

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newFavoriteFixture(t)
		_, err := uc.RemoveFavorite(ctx, "zzz")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		uc, store, _ := newFavoriteFixture(t)
		store.On("DeleteFavorite", ctx, oid).Return(nil, nil)

		res, err := uc.RemoveFavorite(ctx, oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, &domain.DeleteResult{Acknowledged: true, DeletedCount: 0}, res)
	})

	t.Run("removed publishes with artwork id", func(t *testing.T) {
		uc, store, events := newFavoriteFixture(t)
		store.On("DeleteFavorite", ctx, oid).Return(&domain.Favorite{ID: oid, ArtworkID: "art1", UserEmail: "u@x.com"}, nil)
		events.On("PublishArtworkEvent", ctx, mock.MatchedBy(func(p payloads.ArtworkEventPayload) bool {
			return p.Type == domain.EventFavoriteRemoved && p.ArtworkID == "art1" && p.Email == "u@x.com"
		})).Return(nil)

		res, err := uc.RemoveFavorite(ctx, oid.Hex())
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.DeletedCount)
	})
}
