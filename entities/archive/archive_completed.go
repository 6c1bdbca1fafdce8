package archive

import (
	"net/http"

	"api/utils"
)

// ArchiveCompleted moves every completed application into the archive in one
// atomic batch. Finding nothing to move is a success with count zero.
func (h *Handler) ArchiveCompleted(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.ArchiveCompleted(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not archive completed applications", err)
		return
	}

	h.log.Info("archived completed applications", "count", count)

	utils.SendSuccess(w, http.StatusOK, "Completed applications archived", map[string]any{
		"archivedCount": count,
	})
}
