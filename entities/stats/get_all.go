package stats

import (
	"log/slog"
	"net/http"

	"api/storage"
	"api/utils"
)

type Handler struct {
	store storage.Store
	log   *slog.Logger
}

func NewHandler(store storage.Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// GetAll serves the dashboard counters from store count queries.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load stats", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"stats": stats,
	})
}
