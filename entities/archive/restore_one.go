package archive

import (
	"errors"
	"net/http"

	"api/storage"
	"api/utils"
)

// RestoreOne moves one archived application back to the active collection
// under the same id. A missing id is the one place the archive signals 404.
func (h *Handler) RestoreOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.store.RestoreArchived(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.SendError(w, http.StatusNotFound, "Archived application not found", nil)
		return
	}
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not restore the application", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Application restored", nil)
}
