package presence

import (
	"log/slog"
	"sync"

	"api/storage"

	"github.com/gorilla/websocket"
)

// Handler tracks open admin dashboard tabs. Each tab registers a session,
// heartbeats it every 30 seconds and deletes it on logout or tab close;
// watchers get the live set pushed over websocket after every change.
type Handler struct {
	store storage.Store
	log   *slog.Logger

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func NewHandler(store storage.Store, log *slog.Logger) *Handler {
	return &Handler{
		store:     store,
		log:       log,
		wsClients: map[*websocket.Conn]bool{},
	}
}
