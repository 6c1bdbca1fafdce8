package presence

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"

	"github.com/google/uuid"
)

type registerRequest struct {
	Browser string `json:"browser"`
}

// CreateOne registers a new admin session under a random token and pushes
// the updated live set to every watcher.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session := &schemas.AdminSession{
		ID:      uuid.NewString(),
		Browser: req.Browser,
	}

	if err := h.store.CreateSession(r.Context(), session); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not register the session", err)
		return
	}

	h.broadcastSessions(r.Context())

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"sessionId": session.ID,
	})
}
