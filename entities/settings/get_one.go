package settings

import (
	"log/slog"
	"net/http"

	"api/cache"
	"api/schemas"
	"api/storage"
	"api/utils"
)

type Handler struct {
	store storage.Store
	cache *cache.Cache
	log   *slog.Logger
}

func NewHandler(store storage.Store, c *cache.Cache, log *slog.Logger) *Handler {
	return &Handler{store: store, cache: c, log: log}
}

// GetOne reads the singleton site settings, defaulting to an empty prefix
// when the document has never been written.
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	cached := schemas.Settings{}
	if h.cache.GetJSON(r.Context(), cache.KeySettings, &cached) {
		utils.SendSuccess(w, http.StatusOK, "", map[string]any{"settings": cached})
		return
	}

	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load settings", err)
		return
	}
	h.cache.SetJSON(r.Context(), cache.KeySettings, settings)

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"settings": settings,
	})
}
