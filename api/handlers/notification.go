package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationHub keeps the connected browser clients (userId -> conn) and
// pushes reminder notifications to them as they fire
type NotificationHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

// NewNotificationHub creates an empty hub
func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients: make(map[string]*websocket.Conn),
	}
}

// ServeWebSocket upgrades the connection and registers the client for
// reminder pushes until it disconnects
func (h *NotificationHub) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		conn.Close()
		return
	}

	h.mutex.Lock()
	h.clients[userID] = conn
	h.mutex.Unlock()
	zap.S().Infow("client connected to notifications", "userId", userID)

	conn.SetCloseHandler(func(code int, text string) error {
		h.mutex.Lock()
		delete(h.clients, userID)
		h.mutex.Unlock()
		zap.S().Infow("client disconnected from notifications", "userId", userID)
		return nil
	})

	// Keep connection alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			conn.Close()
			break
		}
	}
}

// Broadcast pushes a reminder notification to every connected client.
// Clients that fail to receive are dropped.
func (h *NotificationHub) Broadcast(notification interface{}) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": "reminder",
			"data":  notification,
		})
		if err != nil {
			zap.S().Errorw("failed to push notification", "userId", userID, "error", err)
			delete(h.clients, userID)
			conn.Close()
		}
	}
}

// ClientCount reports how many clients are connected
func (h *NotificationHub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}
