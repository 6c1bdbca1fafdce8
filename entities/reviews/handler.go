package reviews

import (
	"log/slog"

	"api/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
	store storage.Store
	log   *slog.Logger
}

func NewHandler(store storage.Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}
