package presence

import (
	"net/http"
	"time"

	"api/schemas"
	"api/utils"
)

// GetAll returns the live session set: stored sessions minus those whose
// heartbeat went stale.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.ListSessions(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load sessions", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"sessions": schemas.LiveSessions(sessions, time.Now().UTC()),
	})
}
