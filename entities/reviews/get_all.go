package reviews

import (
	"net/http"

	"api/utils"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListReviews(r.Context())
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load reviews", err)
		return
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"reviews": reviews,
	})
}
