package products

import (
	"log/slog"
	"net/http"

	"api/cache"
	"api/schemas"
	"api/storage"
	"api/utils"
)

type Handler struct {
	store storage.Store
	cache *cache.Cache
	log   *slog.Logger
}

func NewHandler(store storage.Store, c *cache.Cache, log *slog.Logger) *Handler {
	return &Handler{store: store, cache: c, log: log}
}

// GetAll returns the catalog sorted by numeric id, served from the cache
// when warm. Seeded feature lists stored as JSON text are normalized by the
// storage layer.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	products := []schemas.Product{}
	if !h.cache.GetJSON(r.Context(), cache.KeyProducts, &products) {
		var err error
		products, err = h.store.ListProducts(r.Context())
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "Could not load products", err)
			return
		}
		h.cache.SetJSON(r.Context(), cache.KeyProducts, products)
	}

	utils.SendSuccess(w, http.StatusOK, "", map[string]any{
		"products": products,
	})
}
