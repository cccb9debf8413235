package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/artgallery/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ArtworksCollection  = "artworks"
	FavoritesCollection = "favorites"
)

// Client держит единственный пул соединений с MongoDB,
// общий для всех обработчиков запросов
type Client struct {
	Mongo  *mongo.Client
	DB     *mongo.Database
	logger *slog.Logger
}

// NewClient открывает подключение к MongoDB и проверяет его ping-ом
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMaxPoolSize(25).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(5 * time.Minute)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mc, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("failed to open MongoDB connection", "error", err)
		return nil, fmt.Errorf("open mongodb connection: %w", err)
	}

	if err = mc.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error("failed to ping MongoDB", "error", err)
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("MongoDB connection established successfully",
		"database", cfg.MongoDatabase,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Client{Mongo: mc, DB: mc.Database(cfg.MongoDatabase), logger: logger}, nil
}

func (c *Client) Artworks() *mongo.Collection {
	return c.DB.Collection(ArtworksCollection)
}

func (c *Client) Favorites() *mongo.Collection {
	return c.DB.Collection(FavoritesCollection)
}

// Ping используется проверкой готовности
func (c *Client) Ping(ctx context.Context) error {
	return c.Mongo.Ping(ctx, readpref.Primary())
}

// EnsureIndexes создаёт индексы коллекций; уникальный индекс favorites
// гарантирует одну запись на пару artworkId+userEmail
func (c *Client) EnsureIndexes(ctx context.Context) error {
	start := time.Now()

	_, err := c.Artworks().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "artistEmail", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("artist_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_idx"),
		},
		{
			Keys:    bson.D{{Key: "likes", Value: -1}},
			Options: options.Index().SetName("likes_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("create artworks indexes: %w", err)
	}

	_, err = c.Favorites().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "artworkId", Value: 1},
				{Key: "userEmail", Value: 1},
			},
			Options: options.Index().SetName("artwork_user_idx").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}},
			Options: options.Index().SetName("user_email_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("create favorites indexes: %w", err)
	}

	c.logger.Info("MongoDB indexes ensured", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	start := time.Now()
	if err := c.Mongo.Disconnect(ctx); err != nil {
		c.logger.Error("failed to close MongoDB connection", "error", err)
		return err
	}
	c.logger.Info("MongoDB connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
