// Package ws pushes fleet updates to connected browsers so open dashboards
// reflect supplier and component swaps without polling.
package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS layer in front of us.
		return true
	},
}

// Message is the envelope broadcast to every client.
type Message struct {
	Type    string `json:"type"` // "fleet_update"
	Payload any    `json:"payload"`
}

// Hub fans one message out to every connected client. Run must be started
// in its own goroutine before Broadcast is called.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan Message
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Message, 16),
	}
}

// Run delivers broadcast messages, dropping clients whose writes fail.
func (h *Hub) Run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteJSON(msg); err != nil {
				logrus.WithError(err).Debug("dropping websocket client")
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

// Broadcast queues a message for delivery to all clients. A nil hub is a
// no-op so callers can run without the realtime layer wired.
func (h *Hub) Broadcast(msgType string, payload any) {
	if h == nil {
		return
	}
	h.broadcast <- Message{Type: msgType, Payload: payload}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client disconnects. Clients never send meaningful frames; the read loop
// only detects closure.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	logrus.WithField("remote", conn.RemoteAddr().String()).Debug("websocket client connected")

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
