package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	User string
	Conn *websocket.Conn
}

// RealtimeHub fans notifications out to a user's open websocket
// connections, keyed by identity.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.User] == nil {
		h.clients[c.User] = make(map[*WSClient]struct{})
	}
	h.clients[c.User][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.User]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.User)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(user string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[user] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
