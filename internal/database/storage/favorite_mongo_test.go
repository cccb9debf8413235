package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/logger"
)

func TestFavoriteStorage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert sets id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		st := NewFavoriteStorage(mt.Coll, logger.Discard())
		fav := &domain.Favorite{ArtworkID: "art1", UserEmail: "u@x.com", Title: "T"}
		res, err := st.InsertFavorite(ctx, fav)
		require.NoError(mt, err)
		assert.Equal(mt, fav.ID.Hex(), res.InsertedID)
		assert.False(mt, fav.ID.IsZero())
	})

	mt.Run("duplicate pair maps to ErrDuplicateKey", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: favorites index: artwork_user_idx",
		}))

		st := NewFavoriteStorage(mt.Coll, logger.Discard())
		_, err := st.InsertFavorite(ctx, &domain.Favorite{ArtworkID: "art1", UserEmail: "u@x.com"})
		assert.ErrorIs(mt, err, ports.ErrDuplicateKey)
	})

	mt.Run("find by user", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "artworkId", Value: "art1"}, {Key: "userEmail", Value: "u@x.com"}},
		))

		st := NewFavoriteStorage(mt.Coll, logger.Discard())
		favs, err := st.FindFavoritesByUser(ctx, "u@x.com")
		require.NoError(mt, err)
		require.Len(mt, favs, 1)
		assert.Equal(mt, "art1", favs[0].ArtworkID)
	})

	mt.Run("delete returns removed document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{{Key: "_id", Value: id}, {Key: "artworkId", Value: "art1"}, {Key: "userEmail", Value: "u@x.com"}}},
		})

		st := NewFavoriteStorage(mt.Coll, logger.Discard())
		fav, err := st.DeleteFavorite(ctx, id)
		require.NoError(mt, err)
		require.NotNil(mt, fav)
		assert.Equal(mt, "u@x.com", fav.UserEmail)
	})

	mt.Run("delete of missing id returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		st := NewFavoriteStorage(mt.Coll, logger.Discard())
		fav, err := st.DeleteFavorite(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Nil(mt, fav)
	})
}
