package posts

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"
)

type createRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Password string `json:"password"`
	Rating   int    `json:"rating" validate:"min=0,max=5"`
}

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "title, content and author are required; rating must be 0-5", err)
		return
	}

	post := &schemas.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Password: req.Password,
		Rating:   req.Rating,
	}

	id, err := h.store.CreatePost(r.Context(), post)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not save the post", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Post created", map[string]any{
		"postId": id,
	})
}
