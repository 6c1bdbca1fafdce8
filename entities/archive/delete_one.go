package archive

import (
	"net/http"

	"api/utils"
)

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteArchived(r.Context(), id); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not delete the archived application", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Archived application deleted", nil)
}
