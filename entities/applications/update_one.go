package applications

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"
)

// UpdateOne applies a partial patch to status, schedule or memo. The
// cancellation rewrite lives in ApplicationPatch.Fields; updating an unknown
// id is a no-op success.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch schemas.ApplicationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		utils.SendError(w, http.StatusBadRequest, "No updatable fields in request", nil)
		return
	}

	if err := h.store.UpdateApplication(r.Context(), id, fields); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not update the application", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Application updated", nil)
}
