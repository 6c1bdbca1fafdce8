package posts

import (
	"net/http"

	"api/utils"
)

// DeleteOne removes a post and cascades to its comments in the same batch.
func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeletePost(r.Context(), id); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not delete the post", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Post deleted", nil)
}
