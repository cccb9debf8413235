package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoArmGo/artgallery/internal/domain"
	"github.com/GoArmGo/artgallery/internal/usecase"
	"github.com/go-chi/chi/v5"
)

const imageFormField = "image"

// ArtworkHandler обрабатывает HTTP-запросы для работ художников.
type ArtworkHandler struct {
	artworks       usecase.ArtworkUseCase
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewArtworkHandler(uc usecase.ArtworkUseCase, maxUploadBytes int64, logger *slog.Logger) *ArtworkHandler {
	return &ArtworkHandler{artworks: uc, maxUploadBytes: maxUploadBytes, logger: logger}
}

// ArtistProfile: GET /artist-profile/{email}: три последние работы художника.
func (h *ArtworkHandler) ArtistProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	artworks, err := h.artworks.ListArtistArtworks(r.Context(), email, usecase.ArtistProfileLimit)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks, h.logger)
}

// MyArtworks: GET /my-artworks?email=
func (h *ArtworkHandler) MyArtworks(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.logger.Warn("missing required parameter", "param", "email")
		respondWithError(w, http.StatusBadRequest, msgArtistEmail, h.logger)
		return
	}

	artworks, err := h.artworks.ListArtistArtworks(r.Context(), email, 0)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks, h.logger)
}

func (h *ArtworkHandler) List(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworks.ListArtworks(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks, h.logger)
}

func (h *ArtworkHandler) Featured(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworks.FeaturedArtworks(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks, h.logger)
}

func (h *ArtworkHandler) Trending(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworks.TrendingArtworks(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks, h.logger)
}

func (h *ArtworkHandler) TopArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artworks.TopArtists(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artists, h.logger)
}

func (h *ArtworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	artwork, err := h.artworks.GetArtwork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, artwork, h.logger)
}

// Create: POST /artworks. Поля вне списка ArtworkInput отклоняются.
func (h *ArtworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.ArtworkInput
	if err := decodeJSON(r, &in, true); err != nil {
		h.logger.Warn("invalid artwork body", "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	res, err := h.artworks.CreateArtwork(r.Context(), in)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	h.logger.Info("artwork created", "id", res.InsertedID)
	respondWithJSON(w, http.StatusOK, res, h.logger)
}

// Update: PATCH /artworks/{id}, частичное обновление.
func (h *ArtworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in domain.ArtworkInput
	if err := decodeJSON(r, &in, true); err != nil {
		h.logger.Warn("invalid artwork patch body", "id", id, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	res, err := h.artworks.UpdateArtwork(r.Context(), id, in)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, res, h.logger)
}

func (h *ArtworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.artworks.DeleteArtwork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, res, h.logger)
}

type likeRequest struct {
	Email string `json:"email"`
}

// Like: PATCH /artworks/like/{id} с телом {"email": ...}.
func (h *ArtworkHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req likeRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req, false); err != nil {
			h.logger.Warn("invalid like body", "id", id, "error", err)
			respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
	}

	if err := h.artworks.LikeArtwork(r.Context(), id, req.Email); err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}

// UploadImage: POST /artworks/{id}/image, multipart с частью "image".
func (h *ArtworkHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.logger.Warn("invalid multipart body", "id", id, "error", err)
		respondWithError(w, http.StatusBadRequest, msgInvalidBody, h.logger)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		h.logger.Warn("missing image part", "id", id, "error", err)
		respondWithError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.artworks.AttachImage(r.Context(), id, file, header.Filename, contentType)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"image": url}, h.logger)
}
