package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// artworkUseCase implements ArtworkUseCase
type artworkUseCase struct {
	artworks    ports.ArtworkStorage
	fileStorage ports.FileStorage
	events      ports.ArtworkEventPublisher
	cache       ports.TopArtistsCache
	logger      *slog.Logger
	now         func() time.Time
}

// NewArtworkUseCase создает новый экземпляр ArtworkUseCase.
// fileStorage, events и cache необязательны: nil отключает загрузку изображений,
// публикацию событий и кэш соответственно.
func NewArtworkUseCase(
	artworks ports.ArtworkStorage,
	fileStorage ports.FileStorage,
	events ports.ArtworkEventPublisher,
	cache ports.TopArtistsCache,
	logger *slog.Logger,
) ArtworkUseCase {
	return &artworkUseCase{
		artworks:    artworks,
		fileStorage: fileStorage,
		events:      events,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *artworkUseCase) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	artworks, err := uc.artworks.FindArtworks(ctx, ports.ArtworkQuery{Sort: ports.SortNewest})
	if err != nil {
		return nil, fmt.Errorf("usecase: list artworks: %w", err)
	}
	return artworks, nil
}

func (uc *artworkUseCase) ListArtistArtworks(ctx context.Context, email string, limit int64) ([]domain.Artwork, error) {
	artworks, err := uc.artworks.FindArtworks(ctx, ports.ArtworkQuery{
		ArtistEmail: email,
		Sort:        ports.SortNewest,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("usecase: list artworks of %s: %w", email, err)
	}
	return artworks, nil
}

func (uc *artworkUseCase) FeaturedArtworks(ctx context.Context) ([]domain.Artwork, error) {
	artworks, err := uc.artworks.FindArtworks(ctx, ports.ArtworkQuery{Sort: ports.SortInserted, Limit: FeaturedLimit})
	if err != nil {
		return nil, fmt.Errorf("usecase: featured artworks: %w", err)
	}
	return artworks, nil
}

func (uc *artworkUseCase) TrendingArtworks(ctx context.Context) ([]domain.Artwork, error) {
	artworks, err := uc.artworks.FindArtworks(ctx, ports.ArtworkQuery{Sort: ports.SortMostLiked, Limit: TrendingLimit})
	if err != nil {
		return nil, fmt.Errorf("usecase: trending artworks: %w", err)
	}
	return artworks, nil
}

// TopArtists сначала смотрит в кэш; ошибки кэша не мешают ответу из БД
func (uc *artworkUseCase) TopArtists(ctx context.Context) ([]domain.TopArtist, error) {
	if uc.cache != nil {
		artists, ok, err := uc.cache.GetTopArtists(ctx)
		if err != nil {
			uc.logger.Warn("top artists cache read failed", "error", err)
		} else if ok {
			return artists, nil
		}
	}

	artists, err := uc.artworks.TopArtists(ctx, TopArtistsLimit)
	if err != nil {
		return nil, fmt.Errorf("usecase: top artists: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetTopArtists(ctx, artists); err != nil {
			uc.logger.Warn("top artists cache write failed", "error", err)
		}
	}
	return artists, nil
}

func (uc *artworkUseCase) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	artwork, err := uc.artworks.GetArtworkByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("usecase: get artwork %s: %w", id, err)
	}
	if artwork == nil {
		return nil, ErrArtworkNotFound
	}
	return artwork, nil
}

func (uc *artworkUseCase) CreateArtwork(ctx context.Context, in domain.ArtworkInput) (*domain.InsertResult, error) {
	if err := validateArtworkInput(in, true); err != nil {
		return nil, err
	}

	res, err := uc.artworks.InsertArtwork(ctx, in, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("usecase: create artwork: %w", err)
	}

	uc.invalidateTopArtists(ctx)
	uc.publish(ctx, domain.EventArtworkCreated, res.InsertedID, *in.ArtistEmail)
	return res, nil
}

// UpdateArtwork применяет merge-patch без проверки версии документа
func (uc *artworkUseCase) UpdateArtwork(ctx context.Context, id string, in domain.ArtworkInput) (*domain.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validateArtworkInput(in, false); err != nil {
		return nil, err
	}

	res, err := uc.artworks.UpdateArtwork(ctx, oid, in)
	if err != nil {
		return nil, fmt.Errorf("usecase: update artwork %s: %w", id, err)
	}

	if res.MatchedCount > 0 {
		uc.invalidateTopArtists(ctx)
		uc.publish(ctx, domain.EventArtworkUpdated, oid.Hex(), "")
	}
	return res, nil
}

// DeleteArtwork не трогает избранное, ссылающееся на работу
func (uc *artworkUseCase) DeleteArtwork(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := uc.artworks.DeleteArtwork(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("usecase: delete artwork %s: %w", id, err)
	}

	if res.DeletedCount > 0 {
		uc.invalidateTopArtists(ctx)
		uc.publish(ctx, domain.EventArtworkDeleted, oid.Hex(), "")
	}
	return res, nil
}

// LikeArtwork ставит лайк одним условным обновлением.
// Если документ не подошёл, отдельный запрос различает "нет работы" и "уже лайкнуто".
func (uc *artworkUseCase) LikeArtwork(ctx context.Context, id, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	liked, err := uc.artworks.LikeArtwork(ctx, oid, email)
	if err != nil {
		return fmt.Errorf("usecase: like artwork %s: %w", id, err)
	}

	if !liked {
		exists, err := uc.artworks.ArtworkExists(ctx, oid)
		if err != nil {
			return fmt.Errorf("usecase: check artwork %s: %w", id, err)
		}
		if !exists {
			return ErrArtworkNotFound
		}
		return ErrAlreadyLiked
	}

	uc.invalidateTopArtists(ctx)
	uc.publish(ctx, domain.EventArtworkLiked, oid.Hex(), email)
	return nil
}

func (uc *artworkUseCase) AttachImage(ctx context.Context, id string, reader io.Reader, filename, contentType string) (string, error) {
	if uc.fileStorage == nil {
		return "", ErrUploadsDisabled
	}
	oid, err := parseID(id)
	if err != nil {
		return "", err
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedContent
	}

	exists, err := uc.artworks.ArtworkExists(ctx, oid)
	if err != nil {
		return "", fmt.Errorf("usecase: check artwork %s: %w", id, err)
	}
	if !exists {
		return "", ErrArtworkNotFound
	}

	key := fmt.Sprintf("artworks/%s/%s%s", oid.Hex(), uuid.NewString(), ext)
	url, err := uc.fileStorage.UploadFile(ctx, key, reader, contentType)
	if err != nil {
		return "", fmt.Errorf("usecase: upload image for artwork %s: %w", id, err)
	}

	res, err := uc.artworks.UpdateArtwork(ctx, oid, domain.ArtworkInput{Image: &url})
	if err != nil {
		return "", fmt.Errorf("usecase: save image url for artwork %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		// работу удалили между проверкой и обновлением
		if derr := uc.fileStorage.DeleteFile(ctx, key); derr != nil {
			uc.logger.Warn("failed to delete orphaned image", "key", key, "error", derr)
		}
		return "", ErrArtworkNotFound
	}

	uc.logger.Info("artwork image attached", "artwork_id", oid.Hex(), "filename", filename, "key", key)
	uc.publish(ctx, domain.EventArtworkUpdated, oid.Hex(), "")
	return url, nil
}

func (uc *artworkUseCase) invalidateTopArtists(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateTopArtists(ctx); err != nil {
		uc.logger.Warn("top artists cache invalidation failed", "error", err)
	}
}

// publish отправляет событие; ошибка очереди не ломает запрос
func (uc *artworkUseCase) publish(ctx context.Context, eventType domain.EventType, artworkID, email string) {
	publishEvent(ctx, uc.events, uc.logger, payloads.ArtworkEventPayload{
		Type:       eventType,
		ArtworkID:  artworkID,
		Email:      email,
		OccurredAt: uc.now().UTC(),
	})
}

func publishEvent(ctx context.Context, events ports.ArtworkEventPublisher, logger *slog.Logger, payload payloads.ArtworkEventPayload) {
	if events == nil {
		return
	}
	if payload.EventID == uuid.Nil {
		payload.EventID = uuid.New()
	}
	if err := payload.Validate(); err != nil {
		logger.Debug("skipping artwork event", "type", payload.Type, "error", err)
		return
	}
	if err := events.PublishArtworkEvent(ctx, payload); err != nil {
		logger.Warn("failed to publish artwork event",
			"type", payload.Type,
			"artwork_id", payload.ArtworkID,
			"error", err,
		)
	}
}
