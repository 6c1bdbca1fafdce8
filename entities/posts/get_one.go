package posts

import (
	"errors"
	"net/http"

	"api/storage"
	"api/utils"
)

// GetOne returns a post's detail view. Each fetch bumps the view counter by
// exactly one before the post is read back.
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	post, err := h.store.GetPost(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.SendError(w, http.StatusNotFound, "Post not found", nil)
		return
	}
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load the post", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"post": post,
	})
}
