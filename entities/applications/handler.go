package applications

import (
	"log/slog"

	"api/notifications"
	"api/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
	store  storage.Store
	log    *slog.Logger
	notify *notifications.Webhook
}

func NewHandler(store storage.Store, log *slog.Logger, notify *notifications.Webhook) *Handler {
	return &Handler{store: store, log: log, notify: notify}
}
