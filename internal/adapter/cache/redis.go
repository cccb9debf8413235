package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoArmGo/artgallery/internal/config"
	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
)

const TopArtistsKey = "artgallery:top-artists"

// store содержит подмножество команд redis, которое использует кэш
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache хранит агрегат топ-художников с TTL
type RedisCache struct {
	client *redis.Client
	store  store
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.TopArtistsCache = (*RedisCache)(nil)

// NewRedisCache подключается к Redis и проверяет соединение
func NewRedisCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis cache connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB, "ttl", cfg.Redis.TTL)

	return &RedisCache{client: client, store: client, ttl: cfg.Redis.TTL, logger: logger}, nil
}

func newWithStore(s store, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{store: s, ttl: ttl, logger: logger}
}

func (c *RedisCache) GetTopArtists(ctx context.Context) ([]domain.TopArtist, bool, error) {
	data, err := c.store.Get(ctx, TopArtistsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("cache miss", "key", TopArtistsKey)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", TopArtistsKey, err)
	}

	var artists []domain.TopArtist
	if err := json.Unmarshal(data, &artists); err != nil {
		c.logger.Warn("dropping corrupted cache entry", "key", TopArtistsKey, "error", err)
		c.store.Del(ctx, TopArtistsKey)
		return nil, false, nil
	}

	c.logger.Debug("cache hit", "key", TopArtistsKey, "count", len(artists))
	return artists, true, nil
}

func (c *RedisCache) SetTopArtists(ctx context.Context, artists []domain.TopArtist) error {
	data, err := json.Marshal(artists)
	if err != nil {
		return fmt.Errorf("marshal top artists: %w", err)
	}
	if err := c.store.Set(ctx, TopArtistsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", TopArtistsKey, err)
	}
	return nil
}

func (c *RedisCache) InvalidateTopArtists(ctx context.Context) error {
	if err := c.store.Del(ctx, TopArtistsKey).Err(); err != nil {
		return fmt.Errorf("del %s: %w", TopArtistsKey, err)
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if c.client == nil {
		return nil
	}
	c.logger.Info("closing Redis connection")
	return c.client.Close()
}
