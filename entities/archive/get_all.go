package archive

import (
	"net/http"

	"api/utils"
)

// GetAll returns archived applications, most recently archived first.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListArchived(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load archived applications", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"applications": apps,
	})
}
