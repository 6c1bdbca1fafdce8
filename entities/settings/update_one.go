package settings

import (
	"encoding/json"
	"net/http"

	"api/cache"
	"api/utils"
)

type updateRequest struct {
	CustomPrefix string `json:"customPrefix"`
}

// UpdateOne upserts the singleton document, stamps updated_at and drops the
// cached copy.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	settings, err := h.store.UpdateSettings(r.Context(), req.CustomPrefix)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not update settings", err)
		return
	}

	h.cache.Delete(r.Context(), cache.KeySettings)

	utils.SendSuccess(w, http.StatusOK, "Settings updated", map[string]any{
		"settings": settings,
	})
}
