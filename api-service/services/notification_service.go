package services

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"marigold-backend/shared/config"
)

// AdminEvent is pushed to connected admin dashboards
type AdminEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NotificationHub manages admin WebSocket connections and broadcasts
type NotificationHub struct {
	clients   map[string]*websocket.Conn
	mutex     sync.RWMutex
	upgrader  websocket.Upgrader
	broadcast chan AdminEvent
}

var (
	hub     *NotificationHub
	hubOnce sync.Once
)

// GetNotificationHub returns the singleton hub
func GetNotificationHub() *NotificationHub {
	hubOnce.Do(func() {
		hub = &NotificationHub{
			clients: make(map[string]*websocket.Conn),
			upgrader: websocket.Upgrader{
				CheckOrigin: func(r *http.Request) bool {
					origin := r.Header.Get("Origin")
					if origin == "" {
						return true
					}
					return origin == config.GetConfig().FrontendURL
				},
			},
			broadcast: make(chan AdminEvent, 256),
		}
		go hub.run()
	})
	return hub
}

// run drains the broadcast channel
func (h *NotificationHub) run() {
	for event := range h.broadcast {
		h.mutex.RLock()
		for id, conn := range h.clients {
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("🔌 WebSocket write failed for %s: %v", id, err)
			}
		}
		h.mutex.RUnlock()
	}
}

// Notify queues an event for all connected admins; never blocks the caller
func (h *NotificationHub) Notify(eventType, message string, data interface{}) {
	event := AdminEvent{
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	select {
	case h.broadcast <- event:
	default:
		log.Println("🚫 Notification channel full, dropping admin event")
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// until the client disconnects; auth runs in the route middleware.
func (h *NotificationHub) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("🚫 WebSocket upgrade failed: %v", err)
		return
	}

	clientID := uuid.New().String()

	h.mutex.Lock()
	h.clients[clientID] = conn
	total := len(h.clients)
	h.mutex.Unlock()
	log.Printf("🔌 Admin WebSocket connected: %s (Total: %d)", clientID, total)

	// Reads are discarded; the socket exists for server pushes only
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mutex.Lock()
	delete(h.clients, clientID)
	total = len(h.clients)
	h.mutex.Unlock()
	conn.Close()
	log.Printf("🔌 Admin WebSocket disconnected: %s (Total: %d)", clientID, total)
}
