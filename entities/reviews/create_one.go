package reviews

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"
)

type createRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	Content string `json:"content" validate:"required"`
}

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "name and content are required; rating must be 0-5", err)
		return
	}

	review := &schemas.Review{
		Name:    req.Name,
		Rating:  req.Rating,
		Content: req.Content,
	}

	id, err := h.store.CreateReview(r.Context(), review)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not save the review", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "Review created", map[string]any{
		"reviewId": id,
	})
}
