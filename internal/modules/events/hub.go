// Package events pushes content-change notifications to the exhibit
// kiosks over websocket so they refresh without polling.
package events

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event describes one content change visible to the kiosks.
type Event struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// Publisher is what the content services see. Services tolerate a nil
// publisher so they stay usable without the websocket layer.
type Publisher interface {
	Publish(entity, action, id string)
}

type Hub struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*websocket.Conn)}
}

// Register attaches a kiosk connection. A reconnecting client replaces
// its previous connection.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	if old, ok := h.conns[clientID]; ok {
		old.Close()
	}
	h.conns[clientID] = conn
	h.mu.Unlock()
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	if conn, ok := h.conns[clientID]; ok {
		conn.Close()
		delete(h.conns, clientID)
	}
	h.mu.Unlock()
}

// Publish broadcasts the event to every connected kiosk. Write failures
// drop the connection; the kiosk reconnects on its own.
func (h *Hub) Publish(entity, action, id string) {
	ev := Event{Entity: entity, Action: action, ID: id, At: time.Now().UTC()}

	h.mu.RLock()
	targets := make(map[string]*websocket.Conn, len(h.conns))
	for clientID, conn := range h.conns {
		targets[clientID] = conn
	}
	h.mu.RUnlock()

	for clientID, conn := range targets {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("event_broadcast_failed client=%s err=%v", clientID, err)
			h.Unregister(clientID)
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	for clientID, conn := range h.conns {
		conn.Close()
		delete(h.conns, clientID)
	}
	h.mu.Unlock()
}
