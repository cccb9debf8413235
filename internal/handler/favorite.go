package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// FavoriteHandler обрабатывает HTTP-запросы для избранного.
type FavoriteHandler struct {
	favorites usecase.FavoriteUseCase
	logger    *slog.Logger
}

func NewFavoriteHandler(uc usecase.FavoriteUseCase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: uc, logger: logger}
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in domain.FavoriteInput
	if err := decodeJSON(r, &in, false); err != nil {
		h.logger.Warn("invalid favorite body", "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	res, err := h.favorites.AddFavorite(r.Context(), in)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, res, h.logger)
}

// List: GET /favorites?email=; без email отдаёт пустой массив.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.ListFavorites(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, favorites, h.logger)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	res, err := h.favorites.RemoveFavorite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, res, h.logger)
}
