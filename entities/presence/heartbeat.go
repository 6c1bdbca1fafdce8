package presence

import (
	"net/http"

	"api/utils"
)

// Heartbeat merges a fresh lastActive into the caller's own session
// document. A heartbeat for an already-removed session is a no-op.
func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.TouchSession(r.Context(), id); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not refresh the session", err)
		return
	}

	h.broadcastSessions(r.Context())

	utils.SendSuccess(w, http.StatusOK, "", nil)
}
