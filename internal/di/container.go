package di

import (
	"context"

	"github.com/GoArmGo/artgallery/internal/adapter/cache"
	"github.com/GoArmGo/artgallery/internal/adapter/storage/minio"
	"github.com/GoArmGo/artgallery/internal/app"
	"github.com/GoArmGo/artgallery/internal/config"
	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/database/client"
	"github.com/GoArmGo/artgallery/internal/database/postgres"
	"github.com/GoArmGo/artgallery/internal/database/storage"
	"github.com/GoArmGo/artgallery/internal/handler"
	"github.com/GoArmGo/artgallery/internal/logger"
	"github.com/GoArmGo/artgallery/internal/metrics"
	"github.com/GoArmGo/artgallery/internal/rabbitmq"
	"github.com/GoArmGo/artgallery/internal/usecase"
)

// BuildApp инициализирует все зависимости для выбранного режима и возвращает готовый App.
// Если инициализация падает на середине, уже открытые подключения закрываются.
func BuildApp(ctx context.Context, mode string) (_ *app.App, err error) {
	// 1. Конфигурация и логгер
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	if err = cfg.Validate(mode == app.ModeWorker); err != nil {
		return nil, err
	}

	var resources []app.Resource
	defer func() {
		if err != nil {
			for i := len(resources) - 1; i >= 0; i-- {
				_ = resources[i].Close(context.Background())
			}
		}
	}()

	m := metrics.New()

	// 2. PostgreSQL: журнал активности
	var activityUseCase usecase.ActivityUseCase
	var pgClient *postgres.Client
	if cfg.ActivityEnabled() {
		pgClient, err = postgres.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		resources = append(resources, app.Resource{Name: "postgres", Close: func(context.Context) error { return pgClient.Close() }})

		activityStorage := postgres.NewActivityStorage(pgClient.DB, pgClient.Gorm, slogger)
		activityUseCase = usecase.NewActivityUseCase(activityStorage, slogger)
	}

	// 3. RabbitMQ: публикация событий и воркер
	var rabbitClient *rabbitmq.Client
	if cfg.EventsEnabled() {
		rabbitClient, err = rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		resources = append(resources, app.Resource{Name: "rabbitmq", Close: func(context.Context) error { return rabbitClient.Close() }})
	}

	if mode == app.ModeWorker {
		slogger.Info("all dependencies initialized", "mode", mode)
		return app.NewApp(cfg, slogger, app.Options{
			ActivityUseCase: activityUseCase,
			EventConsumer:   rabbitClient,
			Metrics:         m,
			Resources:       resources,
		}), nil
	}

	// 4. MongoDB
	mongoClient, err := client.NewClient(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}
	resources = append(resources, app.Resource{Name: "mongodb", Close: mongoClient.Close})

	if err = mongoClient.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	artworkStorage := storage.NewArtworkStorage(mongoClient.Artworks(), slogger)
	favoriteStorage := storage.NewFavoriteStorage(mongoClient.Favorites(), slogger)

	// 5. Необязательные адаптеры: nil-интерфейс отключает функцию
	var publisher ports.ArtworkEventPublisher
	if rabbitClient != nil {
		publisher = rabbitClient
	}

	var fileStorage ports.FileStorage
	if cfg.UploadsEnabled() {
		minioClient, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			return nil, err
		}
		fileStorage = minioClient
	}

	var topArtistsCache ports.TopArtistsCache
	healthChecks := map[string]handler.Pinger{"mongodb": mongoClient}
	if cfg.CacheEnabled() {
		redisCache, err := cache.NewRedisCache(ctx, cfg, slogger)
		if err != nil {
			return nil, err
		}
		resources = append(resources, app.Resource{Name: "redis", Close: func(context.Context) error { return redisCache.Close() }})
		topArtistsCache = redisCache
	}
	if pgClient != nil {
		healthChecks["postgres"] = pgClient
	}

	// 6. Бизнес-логика
	artworkUseCase := usecase.NewArtworkUseCase(artworkStorage, fileStorage, publisher, topArtistsCache, slogger)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteStorage, publisher, slogger)

	// 7. HTTP
	router := handler.NewRouter(handler.RouterDeps{
		Artworks:           artworkUseCase,
		Favorites:          favoriteUseCase,
		Activity:           activityUseCase,
		HealthChecks:       healthChecks,
		Metrics:            m,
		RequestTimeout:     cfg.RequestTimeout,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		UploadsEnabled:     fileStorage != nil,
		MaxUploadBytes:     cfg.MaxUploadBytes,
		Logger:             slogger,
	})

	slogger.Info("all dependencies initialized",
		"mode", mode,
		"activity", cfg.ActivityEnabled(),
		"events", cfg.EventsEnabled(),
		"uploads", cfg.UploadsEnabled(),
		"cache", cfg.CacheEnabled(),
	)

	return app.NewApp(cfg, slogger, app.Options{
		Handler:   router,
		Metrics:   m,
		Resources: resources,
	}), nil
}
