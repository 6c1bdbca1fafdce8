package applications

import (
	"net/http"

	"api/utils"
)

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteApplication(r.Context(), id); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not delete the application", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Application deleted", nil)
}
