package posts

import (
	"net/http"

	"api/utils"
)

// GetAll lists post summaries with comment counts, newest first.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load posts", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"posts": posts,
	})
}
