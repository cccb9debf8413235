package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"
)

// favoriteUseCase implements FavoriteUseCase
type favoriteUseCase struct {
	favorites ports.FavoriteStorage
	events    ports.ArtworkEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewFavoriteUseCase создает новый экземпляр FavoriteUseCase, events может быть nil
func NewFavoriteUseCase(favorites ports.FavoriteStorage, events ports.ArtworkEventPublisher, logger *slog.Logger) FavoriteUseCase {
	return &favoriteUseCase{
		favorites: favorites,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}
}

// AddFavorite вставляет запись; дубликат пары artworkId+userEmail отсекает уникальный индекс
func (uc *favoriteUseCase) AddFavorite(ctx context.Context, in domain.FavoriteInput) (*domain.InsertResult, error) {
	email := strings.TrimSpace(in.UserEmail)
	if email == "" {
		return nil, ErrEmailRequired
	}

	fav := &domain.Favorite{
		ArtworkID:  in.ArtworkID,
		UserEmail:  email,
		Title:      in.Title,
		Image:      in.Image,
		ArtistName: in.ArtistName,
		CreatedAt:  uc.now().UTC(),
	}

	res, err := uc.favorites.InsertFavorite(ctx, fav)
	if errors.Is(err, ports.ErrDuplicateKey) {
		return nil, ErrAlreadyFavorited
	}
	if err != nil {
		return nil, fmt.Errorf("usecase: add favorite: %w", err)
	}

	publishEvent(ctx, uc.events, uc.logger, payloads.ArtworkEventPayload{
		Type:       domain.EventFavoriteAdded,
		ArtworkID:  in.ArtworkID,
		Email:      email,
		OccurredAt: uc.now().UTC(),
	})
	return res, nil
}

// ListFavorites без email возвращает пустой список, не обращаясь к БД
func (uc *favoriteUseCase) ListFavorites(ctx context.Context, email string) ([]domain.Favorite, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []domain.Favorite{}, nil
	}

	favorites, err := uc.favorites.FindFavoritesByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: list favorites of %s: %w", email, err)
	}
	return favorites, nil
}

func (uc *favoriteUseCase) RemoveFavorite(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	removed, err := uc.favorites.DeleteFavorite(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("usecase: remove favorite %s: %w", id, err)
	}
	if removed == nil {
		return &domain.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
	}

	publishEvent(ctx, uc.events, uc.logger, payloads.ArtworkEventPayload{
		Type:       domain.EventFavoriteRemoved,
		ArtworkID:  removed.ArtworkID,
		Email:      removed.UserEmail,
		OccurredAt: uc.now().UTC(),
	})
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
