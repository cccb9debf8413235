package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// Обязателен только для режима server, проверяется в Validate
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"myDatabase"`

	ServerPort         string        `env:"PORT"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Журнал активности (PostgreSQL), необязателен для режима server
	DatabaseURL string `env:"DATABASE_URL"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"artwork_events"`
	}

	// Настройки для MinIO; загрузка изображений включается, если задан MINIO_ENDPOINT
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"artworks"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`
	MinioPublicURL       string `env:"MINIO_PUBLIC_URL"`
	MaxUploadBytes       int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	Redis struct {
		Addr     string        `env:"REDIS_ADDR"`
		Password string        `env:"REDIS_PASSWORD"`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		TTL      time.Duration `env:"TOP_ARTISTS_CACHE_TTL" envDefault:"30s"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "3000"
	}

	if cfg.MinioPublicURL == "" && cfg.MinioEndpoint != "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		cfg.MinioPublicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	return &cfg, nil
}

// Validate проверяет параметры, без которых режим не запустится.
// Серверу нужен MongoDB, воркеру нужны RabbitMQ и PostgreSQL.
func (c *Config) Validate(worker bool) error {
	if worker {
		if !c.EventsEnabled() || !c.ActivityEnabled() {
			return errors.New("worker mode requires RABBITMQ_URL and DATABASE_URL")
		}
		return nil
	}
	if strings.TrimSpace(c.MongoURI) == "" {
		return errors.New("server mode requires MONGO_URI")
	}
	return nil
}

// ActivityEnabled сообщает, настроен ли журнал активности в PostgreSQL.
func (c *Config) ActivityEnabled() bool { return c.DatabaseURL != "" }

// EventsEnabled сообщает, настроена ли публикация событий в RabbitMQ.
func (c *Config) EventsEnabled() bool { return c.RabbitMQ.RabbitMQURL != "" }

// UploadsEnabled сообщает, настроено ли объектное хранилище для изображений.
func (c *Config) UploadsEnabled() bool { return c.MinioEndpoint != "" }

// CacheEnabled сообщает, настроен ли Redis для кэша топ-художников.
func (c *Config) CacheEnabled() bool { return c.Redis.Addr != "" }
