package archive

import (
	"log/slog"

	"api/storage"
)

type Handler struct {
	store storage.Store
	log   *slog.Logger
}

func NewHandler(store storage.Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}
