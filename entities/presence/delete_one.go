package presence

import (
	"net/http"

	"api/utils"
)

// DeleteOne ends a session on logout or via the tab-close beacon. Best
// effort: a crashed tab never calls this and ages out of the live set
// instead.
func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteSession(r.Context(), id); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not end the session", err)
		return
	}

	h.broadcastSessions(r.Context())

	utils.SendSuccess(w, http.StatusOK, "", nil)
}
