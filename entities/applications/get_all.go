package applications

import (
	"net/http"

	"api/schemas"
	"api/utils"
)

// GetAll lists applications. The store filters by exact status; every other
// filter the admin list offers (text search, date range, confirmed-only) and
// the sort order run on the fetched set through the shared schemas helpers.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	apps, err := h.store.ListApplications(r.Context(), query.Get("status"))
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not load applications", err)
		return
	}

	apps = schemas.FilterApplications(apps, schemas.ApplicationListQuery{
		Search:        query.Get("q"),
		From:          query.Get("from"),
		To:            query.Get("to"),
		ConfirmedOnly: query.Get("confirmed") == "true",
	})

	schemas.SortApplications(apps, query.Get("sort"))

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"applications": apps,
	})
}
