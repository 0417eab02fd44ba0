package realtime

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// writeWait bounds how long a single frame write may block on a slow peer
const writeWait = 10 * time.Second

// Conn is the slice of *websocket.Conn the hub needs. Sends are JSON frames,
// and a failed write closes the handle.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client pairs a connection with its write lock. Gorilla connections allow
// only one writer at a time, so every frame to a connection goes out under
// this lock, never under the hub-wide one.
type client struct {
	mu   sync.Mutex
	conn Conn
}

func (c *client) write(payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(payload)
}

// Hub stores the live connections keyed by user ID. It is process-wide
// shared state, so every map access happens under the mutex and no raw
// iteration ever escapes it.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register associates userID with conn, replacing any prior entry for that
// user. Last connect wins; the superseded handle is not closed here.
func (h *Hub) Register(userID string, conn Conn) {
	h.mu.Lock()
	h.clients[userID] = &client{conn: conn}
	h.mu.Unlock()
	zap.S().Debugw("user connected", "userID", userID)
}

// Unregister removes the entry for userID if present. Safe to call any
// number of times for the same user.
func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	delete(h.clients, userID)
	h.mu.Unlock()
	zap.S().Debugw("user disconnected", "userID", userID)
}

// Send delivers payload to userID's connection if one is registered. Sends
// are best effort: an unknown user is a silent no-op, and a write failure
// evicts and closes the dead handle so later sends stop hitting it. The hub
// lock covers only the lookup, so a stalled peer cannot block the registry.
func (h *Hub) Send(userID string, payload interface{}) {
	h.mu.Lock()
	c, ok := h.clients[userID]
	h.mu.Unlock()
	if !ok {
		return
	}

	if err := c.write(payload); err != nil {
		zap.S().Errorw("failed to send to user", "userID", userID, "error", err)
		h.evict(userID, c)
	}
}

// evict drops c from the registry unless a newer connection already
// replaced it, then closes the dead handle.
func (h *Hub) evict(userID string, c *client) {
	h.mu.Lock()
	if cur, ok := h.clients[userID]; ok && cur == c {
		delete(h.clients, userID)
	}
	h.mu.Unlock()
	c.conn.Close()
}

// Len reports the number of live connections
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
