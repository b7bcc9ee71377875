package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a websocket connection with a write lock. gorilla/websocket
// allows only one concurrent writer, and both the hub (pushes) and the
// stream handler (pings) write to the same connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks one live websocket connection per user for pushing
// notifications as they are created.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

// Register replaces any previous connection for the user and returns the
// wrapped client; all writes to the connection must go through it.
func (h *Hub) Register(userID int64, conn *websocket.Conn) *client {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	cl := &client{conn: conn}
	h.clients[userID] = cl
	return cl
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.clients, userID)
	}
}

// SendToUser pushes a message to the user's connection if one is open.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	cl, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return false
	}

	if err := cl.writeJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, userID)
	}
}
