package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/artgallery/internal/usecase"
)

type ActivityHandler struct {
	activity usecase.ActivityUseCase
	logger   *slog.Logger
}

func NewActivityHandler(uc usecase.ActivityUseCase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{activity: uc, logger: logger}
}

// Recent: GET /activity?email=&limit=
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.activity.RecentActivity(r.Context(), r.URL.Query().Get("email"), limit)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, events, h.logger)
}
