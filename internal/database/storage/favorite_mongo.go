package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteStorage struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewFavoriteStorage(coll *mongo.Collection, logger *slog.Logger) *FavoriteStorage {
	return &FavoriteStorage{coll: coll, logger: logger}
}

var _ ports.FavoriteStorage = (*FavoriteStorage)(nil)

// InsertFavorite сохраняет запись избранного.
// Нарушение уникального индекса artworkId+userEmail возвращается как ports.ErrDuplicateKey.
func (s *FavoriteStorage) InsertFavorite(ctx context.Context, fav *domain.Favorite) (*domain.InsertResult, error) {
	start := time.Now()

	res, err := s.coll.InsertOne(ctx, fav)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			s.logger.Warn("favorite already exists",
				"artwork_id", fav.ArtworkID,
				"user_email", fav.UserEmail,
			)
			return nil, ports.ErrDuplicateKey
		}
		s.logger.Error("failed to insert favorite", "artwork_id", fav.ArtworkID, "error", err)
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert favorite: unexpected id type %T", res.InsertedID)
	}
	fav.ID = id

	s.logger.Info("favorite inserted successfully",
		"id", id.Hex(),
		"artwork_id", fav.ArtworkID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (s *FavoriteStorage) FindFavoritesByUser(ctx context.Context, email string) ([]domain.Favorite, error) {
	start := time.Now()

	cur, err := s.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		s.logger.Error("failed to find favorites", "user_email", email, "error", err)
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	defer cur.Close(ctx)

	favorites := []domain.Favorite{}
	if err := cur.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}

	s.logger.Debug("favorites listed",
		"user_email", email,
		"count", len(favorites),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return favorites, nil
}

// DeleteFavorite удаляет запись и возвращает её или nil, если записи не было
func (s *FavoriteStorage) DeleteFavorite(ctx context.Context, id primitive.ObjectID) (*domain.Favorite, error) {
	start := time.Now()

	var fav domain.Favorite
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&fav)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("favorite not found for delete", "id", id.Hex())
			return nil, nil
		}
		s.logger.Error("failed to delete favorite", "id", id.Hex(), "error", err)
		return nil, fmt.Errorf("delete favorite: %w", err)
	}

	s.logger.Info("favorite deleted",
		"id", id.Hex(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &fav, nil
}
