package posts

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"
)

type createCommentRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GetComments lists a post's comments oldest first.
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")

	comments, err := h.store.ListComments(r.Context(), postID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load comments", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"comments": comments,
	})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "author and content are required", err)
		return
	}

	comment := &schemas.Comment{
		PostID:  postID,
		Author:  req.Author,
		Content: req.Content,
	}

	id, err := h.store.CreateComment(r.Context(), comment)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not save the comment", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Comment created", map[string]any{
		"commentId": id,
	})
}
