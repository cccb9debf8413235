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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// artworkDocument задаёт форму документа при вставке: только присланные поля и createdAt
type artworkDocument struct {
	domain.ArtworkInput `bson:",inline"`
	CreatedAt           time.Time `bson:"createdAt"`
}

type ArtworkStorage struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewArtworkStorage(coll *mongo.Collection, logger *slog.Logger) *ArtworkStorage {
	return &ArtworkStorage{coll: coll, logger: logger}
}

var _ ports.ArtworkStorage = (*ArtworkStorage)(nil)

func sortFor(s ports.ArtworkSort) bson.D {
	switch s {
	case ports.SortInserted:
		return bson.D{{Key: "_id", Value: -1}}
	case ports.SortMostLiked:
		return bson.D{{Key: "likes", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// FindArtworks выполняет выборку по фильтру с сортировкой и лимитом
func (s *ArtworkStorage) FindArtworks(ctx context.Context, q ports.ArtworkQuery) ([]domain.Artwork, error) {
	start := time.Now()

	filter := bson.M{}
	if q.ArtistEmail != "" {
		filter["artistEmail"] = q.ArtistEmail
	}

	opts := options.Find().SetSort(sortFor(q.Sort))
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		s.logger.Error("failed to find artworks", "artist_email", q.ArtistEmail, "error", err)
		return nil, fmt.Errorf("find artworks: %w", err)
	}
	defer cur.Close(ctx)

	artworks := []domain.Artwork{}
	if err := cur.All(ctx, &artworks); err != nil {
		s.logger.Error("failed to decode artworks", "error", err)
		return nil, fmt.Errorf("decode artworks: %w", err)
	}

	s.logger.Debug("artworks listed",
		"artist_email", q.ArtistEmail,
		"limit", q.Limit,
		"count", len(artworks),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return artworks, nil
}

// GetArtworkByID возвращает nil, nil если документа нет
func (s *ArtworkStorage) GetArtworkByID(ctx context.Context, id primitive.ObjectID) (*domain.Artwork, error) {
	start := time.Now()

	var artwork domain.Artwork
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&artwork)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("artwork not found by id", "id", id.Hex())
			return nil, nil
		}
		s.logger.Error("failed to get artwork by id", "id", id.Hex(), "error", err)
		return nil, fmt.Errorf("get artwork by id: %w", err)
	}

	s.logger.Debug("artwork retrieved by id",
		"id", id.Hex(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &artwork, nil
}

func (s *ArtworkStorage) ArtworkExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		s.logger.Error("failed to count artwork", "id", id.Hex(), "error", err)
		return false, fmt.Errorf("count artwork: %w", err)
	}
	return n > 0, nil
}

func (s *ArtworkStorage) InsertArtwork(ctx context.Context, in domain.ArtworkInput, createdAt time.Time) (*domain.InsertResult, error) {
	start := time.Now()

	res, err := s.coll.InsertOne(ctx, artworkDocument{ArtworkInput: in, CreatedAt: createdAt})
	if err != nil {
		s.logger.Error("failed to insert artwork", "error", err)
		return nil, fmt.Errorf("insert artwork: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert artwork: unexpected id type %T", res.InsertedID)
	}

	s.logger.Info("artwork inserted successfully",
		"id", id.Hex(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// UpdateArtwork выполняет $set присланных полей; nil-поля в $set не попадают
func (s *ArtworkStorage) UpdateArtwork(ctx context.Context, id primitive.ObjectID, in domain.ArtworkInput) (*domain.UpdateResult, error) {
	start := time.Now()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": in})
	if err != nil {
		s.logger.Error("failed to update artwork", "id", id.Hex(), "error", err)
		return nil, fmt.Errorf("update artwork: %w", err)
	}

	s.logger.Info("artwork updated",
		"id", id.Hex(),
		"matched", res.MatchedCount,
		"modified", res.ModifiedCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

func (s *ArtworkStorage) DeleteArtwork(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	start := time.Now()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		s.logger.Error("failed to delete artwork", "id", id.Hex(), "error", err)
		return nil, fmt.Errorf("delete artwork: %w", err)
	}

	s.logger.Info("artwork deleted",
		"id", id.Hex(),
		"deleted", res.DeletedCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// LikeArtwork: фильтр likedBy $ne email делает проверку и запись одной операцией
func (s *ArtworkStorage) LikeArtwork(ctx context.Context, id primitive.ObjectID, email string) (bool, error) {
	start := time.Now()

	filter := bson.M{"_id": id, "likedBy": bson.M{"$ne": email}}
	update := bson.M{
		"$inc":  bson.M{"likes": 1},
		"$push": bson.M{"likedBy": email},
	}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		s.logger.Error("failed to like artwork", "id", id.Hex(), "error", err)
		return false, fmt.Errorf("like artwork: %w", err)
	}

	s.logger.Info("artwork like applied",
		"id", id.Hex(),
		"matched", res.MatchedCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res.MatchedCount > 0, nil
}

// TopArtists группирует работы по artistEmail и сортирует по сумме лайков
func (s *ArtworkStorage) TopArtists(ctx context.Context, limit int64) ([]domain.TopArtist, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$artistEmail"},
			{Key: "artistName", Value: bson.D{{Key: "$first", Value: "$artistName"}}},
			{Key: "artistPhoto", Value: bson.D{{Key: "$first", Value: "$artistPhoto"}}},
			{Key: "totalArtworks", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$likes", 0}},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalLikes", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		s.logger.Error("failed to aggregate top artists", "error", err)
		return nil, fmt.Errorf("aggregate top artists: %w", err)
	}
	defer cur.Close(ctx)

	artists := []domain.TopArtist{}
	if err := cur.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("decode top artists: %w", err)
	}

	s.logger.Debug("top artists aggregated",
		"count", len(artists),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return artists, nil
}
