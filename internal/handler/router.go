package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/artgallery/internal/usecase"
)

// Pinger проверяет доступность зависимости для /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps содержит всё, что нужно для сборки маршрутов.
// Nil Activity отключает /activity, UploadsEnabled включает загрузку изображений.
type RouterDeps struct {
	Artworks  usecase.ArtworkUseCase
	Favorites usecase.FavoriteUseCase
	Activity  usecase.ActivityUseCase

	HealthChecks map[string]Pinger
	Metrics      interface {
		Middleware(next http.Handler) http.Handler
		Handler() http.Handler
	}

	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	UploadsEnabled     bool
	MaxUploadBytes     int64

	Logger *slog.Logger
}

// NewRouter регистрирует каждый маршрут ровно один раз
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	if len(d.CORSAllowedOrigins) > 0 {
		r.Use(CORS(d.CORSAllowedOrigins))
	}
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Server is running!"))
	})
	r.Get("/healthz", healthz(d.HealthChecks, d.Logger))

	artworks := NewArtworkHandler(d.Artworks, d.MaxUploadBytes, d.Logger)
	favorites := NewFavoriteHandler(d.Favorites, d.Logger)

	r.Group(func(r chi.Router) {
		if d.RequestTimeout > 0 {
			r.Use(middleware.Timeout(d.RequestTimeout))
		}

		r.Get("/artist-profile/{email}", artworks.ArtistProfile)
		r.Get("/my-artworks", artworks.MyArtworks)
		r.Get("/top-artists", artworks.TopArtists)
		r.Get("/trending-artworks", artworks.Trending)

		r.Route("/artworks", func(r chi.Router) {
			r.Get("/", artworks.List)
			r.Post("/", artworks.Create)
			r.Get("/featuredArtworks", artworks.Featured)
			r.Patch("/like/{id}", artworks.Like)
			r.Get("/{id}", artworks.Get)
			r.Patch("/{id}", artworks.Update)
			r.Delete("/{id}", artworks.Delete)
			if d.UploadsEnabled {
				r.Post("/{id}/image", artworks.UploadImage)
			}
		})

		r.Post("/favorites", favorites.Add)
		r.Get("/favorites", favorites.List)
		r.Delete("/favorites/{id}", favorites.Remove)

		if d.Activity != nil {
			r.Get("/activity", NewActivityHandler(d.Activity, d.Logger).Recent)
		}
	})

	return r
}

func healthz(checks map[string]Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		for name, p := range checks {
			if err := p.Ping(ctx); err != nil {
				logger.Warn("readiness check failed", "dependency", name, "error", err)
				respondWithError(w, http.StatusServiceUnavailable, name+": "+err.Error(), logger)
				return
			}
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}
