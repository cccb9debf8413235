package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/artgallery/internal/usecase"
)

// Тексты ответов, которые ожидает фронтенд
const (
	msgArtworkNotFound  = "Artwork not found"
	msgAlreadyLiked     = "You already liked this artwork"
	msgEmailRequired    = "User email required"
	msgAlreadyFavorited = "Already in favorites"
	msgArtistEmail      = "Email is required"
	msgInvalidBody      = "invalid request body"
)

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError отправляет JSON-ответ вида {"error": ...}.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithMessage отправляет JSON-ответ вида {"message": ...}.
func respondWithMessage(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"message": message}, logger)
}

// respondWithUseCaseError переводит ошибку бизнес-логики в HTTP-ответ
func respondWithUseCaseError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var vErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		respondWithError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.As(err, &vErr):
		respondWithError(w, http.StatusBadRequest, vErr.Error(), logger)
	case errors.Is(err, usecase.ErrArtworkNotFound):
		respondWithError(w, http.StatusNotFound, msgArtworkNotFound, logger)
	case errors.Is(err, usecase.ErrEmailRequired):
		respondWithMessage(w, http.StatusBadRequest, msgEmailRequired, logger)
	case errors.Is(err, usecase.ErrAlreadyLiked):
		respondWithMessage(w, http.StatusBadRequest, msgAlreadyLiked, logger)
	case errors.Is(err, usecase.ErrAlreadyFavorited):
		respondWithMessage(w, http.StatusBadRequest, msgAlreadyFavorited, logger)
	case errors.Is(err, usecase.ErrUnsupportedContent):
		respondWithError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, usecase.ErrUploadsDisabled):
		respondWithError(w, http.StatusServiceUnavailable, err.Error(), logger)
	default:
		logger.Error("request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error(), logger)
	}
}

// decodeJSON читает тело запроса; strict запрещает поля вне структуры
func decodeJSON(r *http.Request, dst interface{}, strict bool) error {
	dec := json.NewDecoder(r.Body)
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: empty body", msgInvalidBody)
		}
		return fmt.Errorf("%s: %w", msgInvalidBody, err)
	}
	return nil
}
