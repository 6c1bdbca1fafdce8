package presence

import (
	"context"
	"net/http"
	"time"

	"api/schemas"

	"github.com/gorilla/websocket"
)

type SessionsWSMessage struct {
	Action   string                 `json:"action"`
	Sessions []schemas.AdminSession `json:"sessions"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// broadcastSessions pushes the current live set to every connected watcher.
func (h *Handler) broadcastSessions(ctx context.Context) {
	sessions, err := h.store.ListSessions(ctx)
	if err != nil {
		h.log.Warn("session broadcast skipped", "error", err)
		return
	}

	msg := SessionsWSMessage{
		Action:   "sessions",
		Sessions: schemas.LiveSessions(sessions, time.Now().UTC()),
	}

	h.wsMutex.Lock()
	defer h.wsMutex.Unlock()
	for client := range h.wsClients {
		err := client.WriteJSON(msg)
		if err != nil {
			client.Close()
			delete(h.wsClients, client)
		}
	}
}

// WebSocketHandler subscribes an admin client to presence changes. The
// current set is sent on connect; inbound frames are ignored.
func (h *Handler) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not upgrade to websocket", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	h.wsMutex.Lock()
	h.wsClients[conn] = true
	h.wsMutex.Unlock()

	h.broadcastSessions(r.Context())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.wsMutex.Lock()
	delete(h.wsClients, conn)
	h.wsMutex.Unlock()
}
